// Package options turns one textual configuration record into a typed,
// validated Combination and uses it to build a measurable task.
//
// A record is a single annotated Ion struct:
//
//	read::{ format: ion_text, ion_api: dom, limit: 100 }
//
// The leading annotation selects the command. Every field is optional and
// the text value auto is equivalent to leaving the field out; see Schema for
// the full table of names, shapes and defaults.
package options

import (
	berrors "github.com/wzqhbustb/ionbench/bench/errors"
)

// Common holds the options shared by every command.
type Common struct {
	Preallocation *int // encoder buffer preallocation hint, nil for none
	FlushPeriod   *int // values between forced flushes, nil for the writer default
	Format        Format
	API           API
	IOType        IOType
	ImportsFile   string // shared symbol tables, "" for none
	Limit         int    // max top-level values to process
	Compression   Compression
}

// Combination is the resolved configuration of one trial. Exactly one of
// Read and Write is set, matching Command.
type Combination struct {
	Common
	Command Command
	Read    *Read
	Write   *Write
}

// Suffix is the file extension for inputs converted to match c.
func (c *Combination) Suffix() string {
	return c.Format.Suffix() + c.Compression.Suffix()
}

// From parses a configuration record and builds the Combination its
// leading annotation names. No Combination is returned on any error.
func From(text string) (*Combination, error) {
	rec, err := ParseRecord(text)
	if err != nil {
		return nil, err
	}

	tag := ""
	if len(rec.Annotations) > 0 {
		tag = rec.Annotations[0]
	}
	cmd, ok := ParseCommand(tag)
	if !ok {
		return nil, berrors.UnsupportedCommand(tag)
	}

	common, err := decodeCommon(rec)
	if err != nil {
		return nil, err
	}
	c := &Combination{Common: common, Command: cmd}

	switch cmd {
	case CommandRead:
		c.Read, err = decodeRead(rec)
	case CommandWrite:
		c.Write, err = decodeWrite(rec)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func decodeCommon(rec *Record) (Common, error) {
	var (
		c   Common
		err error
	)
	if c.Preallocation, err = PreallocationField.Resolve(rec); err != nil {
		return Common{}, err
	}
	if c.FlushPeriod, err = FlushPeriodField.Resolve(rec); err != nil {
		return Common{}, err
	}
	if c.Format, err = FormatField.Resolve(rec); err != nil {
		return Common{}, err
	}
	if c.API, err = APIField.Resolve(rec); err != nil {
		return Common{}, err
	}
	if c.IOType, err = IOTypeField.Resolve(rec); err != nil {
		return Common{}, err
	}
	if c.ImportsFile, err = ImportsField.Resolve(rec); err != nil {
		return Common{}, err
	}
	if c.Limit, err = LimitField.Resolve(rec); err != nil {
		return Common{}, err
	}
	if c.Compression, err = CompressionField.Resolve(rec); err != nil {
		return Common{}, err
	}
	return c, nil
}
