package formats

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/amzn/ion-go/ion"

	berrors "github.com/wzqhbustb/ionbench/bench/errors"
	"github.com/wzqhbustb/ionbench/bench/options"
)

// readTask fully reads its inputs once per Run.
type readTask struct {
	cat   *Catalog
	c     *options.Combination
	paths []string

	imports *imports
	buffers [][]byte // one per path when io_type is buffer

	// Totals of the last Run.
	values   int
	bytes    int
	decimals float64 // sum of decimals projected to float64
}

func (t *readTask) SetUpTrial() error {
	im, err := loadImports(t.c)
	if err != nil {
		return err
	}
	t.imports = im

	if t.c.IOType != options.IOTypeBuffer {
		return nil
	}
	t.buffers = make([][]byte, len(t.paths))
	total := 0
	for i, path := range t.paths {
		if t.buffers[i], err = t.load(path); err != nil {
			t.buffers = nil
			return err
		}
		total += len(t.buffers[i])
	}
	t.cat.logger.Debug("formats: read inputs buffered",
		slog.Int("inputs", len(t.paths)),
		slog.Int("bytes", total))
	return nil
}

func (t *readTask) load(path string) ([]byte, error) {
	in, err := t.c.NewInputStream(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, berrors.IO("load_input", path, err)
	}
	return data, nil
}

func (t *readTask) SetUpIteration() error { return nil }

func (t *readTask) Run() error {
	t.values, t.bytes, t.decimals = 0, 0, 0
	for i, path := range t.paths {
		if err := t.readPath(i, path); err != nil {
			return err
		}
	}
	return nil
}

func (t *readTask) readPath(i int, path string) (err error) {
	var in io.Reader
	if t.buffers != nil {
		in = bytes.NewReader(t.buffers[i])
	} else {
		var rc io.ReadCloser
		if rc, err = t.c.NewInputStream(path); err != nil {
			return err
		}
		defer func() {
			if cerr := rc.Close(); cerr != nil && err == nil {
				err = berrors.IO("close_input", path, cerr)
			}
		}()
		in = rc
	}

	r := newReader(in, t.imports.readerCatalog())
	for n := 0; n < t.c.Limit && r.Next(); n++ {
		if err := t.readValue(r); err != nil {
			return berrors.IO("read_input", path, err)
		}
	}
	if err := r.Err(); err != nil {
		return berrors.IO("read_input", path, err)
	}
	return nil
}

func (t *readTask) readValue(r ion.Reader) error {
	if t.c.API == options.APIDOM {
		n, err := loadNode(r, false, loadOptions{exactDecimals: t.c.Read.UseBigDecimals})
		if err != nil {
			return err
		}
		t.values += n.size()
		t.countTree(n)
		return nil
	}
	return t.visit(r)
}

func (t *readTask) countTree(n *node) {
	if n.typ == ion.DecimalType && n.decimal == nil && !n.null {
		t.decimals += n.float
	}
	t.consumeLob(n.bytes)
	for _, child := range n.children {
		t.countTree(child)
	}
}

// visit reads the value r is positioned on, and everything inside it,
// through the streaming API.
func (t *readTask) visit(r ion.Reader) error {
	t.values++
	if r.IsNull() {
		return nil
	}

	var err error
	switch r.Type() {
	case ion.BoolType:
		_, err = r.BoolValue()
	case ion.IntType:
		_, err = r.BigIntValue()
	case ion.FloatType:
		_, err = r.FloatValue()
	case ion.DecimalType:
		var d *ion.Decimal
		if d, err = r.DecimalValue(); err == nil && !t.c.Read.UseBigDecimals {
			var f float64
			if f, err = decimalToFloat(d); err == nil {
				t.decimals += f
			}
		}
	case ion.TimestampType:
		_, err = r.TimestampValue()
	case ion.SymbolType:
		_, err = r.SymbolValue()
	case ion.StringType:
		_, err = r.StringValue()
	case ion.BlobType, ion.ClobType:
		var b []byte
		if b, err = r.ByteValue(); err == nil {
			t.consumeLob(b)
		}
	case ion.ListType, ion.SexpType, ion.StructType:
		if err = r.StepIn(); err != nil {
			return err
		}
		for r.Next() {
			if err = t.visit(r); err != nil {
				return err
			}
		}
		if err = r.Err(); err != nil {
			return err
		}
		err = r.StepOut()
	}
	return err
}

// consumeLob walks b in chunk-sized slices when lob chunking is on.
func (t *readTask) consumeLob(b []byte) {
	if len(b) == 0 {
		return
	}
	if !t.c.Read.UseLobChunks {
		t.bytes += len(b)
		return
	}
	chunk := t.cat.config.ChunkSize
	for off := 0; off < len(b); off += chunk {
		end := min(off+chunk, len(b))
		t.bytes += len(b[off:end])
	}
}

func (t *readTask) TearDownIteration() error { return nil }

func (t *readTask) TearDownTrial() error {
	t.buffers = nil
	t.imports = nil
	return nil
}
