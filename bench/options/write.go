package options

// Write holds the options only a write trial uses.
type Write struct {
	BufferSize *int // output stream buffer, nil for the bufio default
	TextPretty bool // indent ion_text output
}

func decodeWrite(rec *Record) (*Write, error) {
	w := &Write{}
	var err error
	if w.BufferSize, err = WriterBufferField.Resolve(rec); err != nil {
		return nil, err
	}
	if w.TextPretty, err = TextPrettyField.Resolve(rec); err != nil {
		return nil, err
	}
	return w, nil
}
