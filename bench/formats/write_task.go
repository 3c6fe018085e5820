package formats

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/amzn/ion-go/ion"

	berrors "github.com/wzqhbustb/ionbench/bench/errors"
	"github.com/wzqhbustb/ionbench/bench/options"
)

// writeTask re-encodes the values of its input once per Run.
type writeTask struct {
	cat   *Catalog
	c     *options.Combination
	input string

	imports *imports
	data    []byte  // decompressed input, replayed by streaming runs
	nodes   []*node // preloaded values, written by dom runs
	output  string  // scratch file, "" when io_type is buffer
	buf     bytes.Buffer

	written int // values written by the last Run
}

func (t *writeTask) SetUpTrial() error {
	im, err := loadImports(t.c)
	if err != nil {
		return err
	}
	t.imports = im

	if t.data, err = t.load(); err != nil {
		return err
	}
	if t.c.API == options.APIDOM {
		if t.nodes, err = t.preload(); err != nil {
			return berrors.IO("load_input", t.input, err)
		}
	}

	if t.c.IOType == options.IOTypeFile {
		if t.output, err = t.cat.config.TempFiles.NewTempFile("write", t.c.Suffix()); err != nil {
			return err
		}
	}
	t.cat.logger.Debug("formats: write trial ready",
		slog.String("input", t.input),
		slog.String("output", t.output),
		slog.Int("bytes", len(t.data)),
		slog.Int("values", len(t.nodes)))
	return nil
}

func (t *writeTask) load() ([]byte, error) {
	in, err := t.c.NewInputStream(t.input)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, berrors.IO("load_input", t.input, err)
	}
	return data, nil
}

func (t *writeTask) preload() ([]*node, error) {
	r := newReader(bytes.NewReader(t.data), t.imports.readerCatalog())
	var nodes []*node
	for len(nodes) < t.c.Limit && r.Next() {
		n, err := loadNode(r, false, loadOptions{exactDecimals: true})
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, r.Err()
}

func (t *writeTask) SetUpIteration() error {
	t.buf.Reset()
	return nil
}

func (t *writeTask) Run() (err error) {
	var out io.Writer
	if t.output == "" {
		if t.c.Preallocation != nil {
			t.buf.Grow(*t.c.Preallocation)
		}
		out = &t.buf
	} else {
		var wc io.WriteCloser
		if wc, err = t.c.NewOutputStream(t.output); err != nil {
			return err
		}
		defer func() {
			if cerr := wc.Close(); cerr != nil && err == nil {
				err = berrors.IO("close_output", t.output, cerr)
			}
		}()
		out = wc
	}

	w, err := newWriter(out, t.c, t.imports.writerTables())
	if err != nil {
		return err
	}
	if t.written, err = t.write(w); err != nil {
		return berrors.IO("write_output", t.output, err)
	}
	if err := w.Finish(); err != nil {
		return berrors.IO("write_output", t.output, err)
	}
	return nil
}

func (t *writeTask) write(w ion.Writer) (int, error) {
	flushEvery := 0
	if t.c.FlushPeriod != nil {
		flushEvery = *t.c.FlushPeriod
	}

	if t.c.API != options.APIDOM {
		r := newReader(bytes.NewReader(t.data), t.imports.readerCatalog())
		return copyStream(r, w, t.c.Limit, flushEvery)
	}

	for i, n := range t.nodes {
		if err := n.writeTo(w); err != nil {
			return i, err
		}
		if flushEvery > 0 && (i+1)%flushEvery == 0 {
			if err := w.Finish(); err != nil {
				return i + 1, err
			}
		}
	}
	return len(t.nodes), nil
}

func (t *writeTask) TearDownIteration() error { return nil }

func (t *writeTask) TearDownTrial() error {
	t.data, t.nodes = nil, nil
	t.buf = bytes.Buffer{}
	if t.output == "" {
		return nil
	}
	output := t.output
	t.output = ""
	if err := os.Remove(output); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return berrors.IO("remove_output", output, err)
	}
	return nil
}
