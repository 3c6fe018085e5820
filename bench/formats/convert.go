package formats

import (
	"bytes"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/dustin/go-humanize"

	berrors "github.com/wzqhbustb/ionbench/bench/errors"
	"github.com/wzqhbustb/ionbench/bench/options"
)

var (
	ivm        = []byte{0xe0, 0x01, 0x00, 0xea}
	gzipMagic  = []byte{0x1f, 0x8b}
	zstdMagic  = []byte{0x28, 0xb5, 0x2f, 0xfd}
	headLength = len(ivm)
)

// source describes an input file as found on disk.
type source struct {
	format     options.Format
	compressed bool
}

// Convert re-encodes input into output to match c and returns the path to
// read. Input already matching c is returned as is.
func (cat *Catalog) Convert(input, output string, c *options.Combination) (string, error) {
	if err := checkFormat("convert", c.Format); err != nil {
		return "", err
	}
	src, err := sniff(input, c)
	if err != nil {
		return "", berrors.ConversionFailed(input, c.Format.String(), err)
	}
	if !needsConversion(src, c) {
		cat.logger.Debug("formats: input already matches",
			slog.String("input", input),
			slog.String("format", src.format.String()))
		return input, nil
	}

	im, err := loadImports(c)
	if err != nil {
		return "", err
	}

	n, err := cat.convert(input, output, c, im)
	if err != nil {
		return "", berrors.ConversionFailed(input, c.Format.String(), err)
	}

	attrs := []any{
		slog.String("input", input),
		slog.String("output", output),
		slog.String("from", src.format.String()),
		slog.String("to", c.Format.String()),
		slog.Int("values", n),
	}
	if fi, err := os.Stat(output); err == nil {
		attrs = append(attrs, slog.String("size", humanize.Bytes(uint64(fi.Size()))))
	}
	cat.logger.Info("formats: input converted", attrs...)
	return output, nil
}

func needsConversion(src source, c *options.Combination) bool {
	return src.format != c.Format ||
		src.compressed ||
		c.Compression != options.CompressionNone ||
		c.Limit != math.MaxInt ||
		c.ImportsFile != ""
}

func (cat *Catalog) convert(input, output string, c *options.Combination, im *imports) (n int, err error) {
	in, err := c.NewInputStream(input)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := c.NewOutputStream(output)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = berrors.IO("close_output", output, cerr)
		}
	}()

	r := newReader(in, im.readerCatalog())
	w, err := newWriter(out, c, im.writerTables())
	if err != nil {
		return 0, err
	}
	if n, err = copyStream(r, w, c.Limit, 0); err != nil {
		return n, err
	}
	return n, w.Finish()
}

// sniff reports whether name is compressed and which Ion encoding it
// holds once decompressed.
func sniff(name string, c *options.Combination) (source, error) {
	var src source

	raw, err := readHead(name, openRaw)
	if err != nil {
		return src, err
	}
	src.compressed = bytes.HasPrefix(raw, gzipMagic) || bytes.HasPrefix(raw, zstdMagic)

	head := raw
	if src.compressed {
		if head, err = readHead(name, c.NewInputStream); err != nil {
			return src, err
		}
	}
	src.format = options.FormatIonText
	if bytes.HasPrefix(head, ivm) {
		src.format = options.FormatIonBinary
	}
	return src, nil
}

func readHead(name string, open func(string) (io.ReadCloser, error)) ([]byte, error) {
	f, err := open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	head := make([]byte, headLength)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, berrors.IO("sniff_input", name, err)
	}
	return head[:n], nil
}

func openRaw(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, berrors.IO("sniff_input", name, err)
	}
	return f, nil
}
