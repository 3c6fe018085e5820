package options

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	berrors "github.com/wzqhbustb/ionbench/bench/errors"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// openFile and createFile are replaced in tests.
var (
	openFile   = os.Open
	createFile = func(name string) (*os.File, error) {
		return os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	}
)

// stream runs its closers in order on Close, returning the first error.
// Every closer runs even if an earlier one fails.
type stream struct {
	closers []func() error
}

func (s *stream) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	s.closers = nil
	return first
}

type inputStream struct {
	io.Reader
	stream
}

type outputStream struct {
	*bufio.Writer
	stream
}

// NewInputStream opens a new buffered stream over name. Gzip and zstd
// content is detected by its magic bytes and decompressed. The caller
// must Close the stream.
func (c *Combination) NewInputStream(name string) (io.ReadCloser, error) {
	f, err := openFile(name)
	if err != nil {
		return nil, berrors.IO("open_input", name, err)
	}

	br := newBufferedReader(f, c.readBufferSize())
	in := &inputStream{Reader: br}
	in.closers = append(in.closers, f.Close)

	head, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		f.Close()
		return nil, berrors.IO("open_input", name, err)
	}

	switch {
	case bytes.HasPrefix(head, gzipMagic):
		gz, err := gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, berrors.IO("open_input", name, err)
		}
		in.Reader = gz
		in.closers = append([]func() error{gz.Close}, in.closers...)
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
		if err != nil {
			f.Close()
			return nil, berrors.IO("open_input", name, err)
		}
		in.Reader = zr
		in.closers = append([]func() error{func() error {
			zr.Close()
			return nil
		}}, in.closers...)
	}
	return in, nil
}

// NewOutputStream creates or truncates name and returns a buffered stream
// over it, compressed as configured. Close flushes the buffer and the
// compressor and always closes the file.
func (c *Combination) NewOutputStream(name string) (io.WriteCloser, error) {
	f, err := createFile(name)
	if err != nil {
		return nil, berrors.IO("open_output", name, err)
	}

	var w io.Writer = f
	out := &outputStream{}
	switch c.Compression {
	case CompressionGzip:
		gz := gzip.NewWriter(f)
		w = gz
		out.closers = append(out.closers, gz.Close)
	case CompressionZstd:
		zw, err := zstd.NewWriter(f, zstd.WithEncoderConcurrency(1))
		if err != nil {
			f.Close()
			return nil, berrors.IO("open_output", name, err)
		}
		w = zw
		out.closers = append(out.closers, zw.Close)
	}

	out.Writer = newBufferedWriter(w, c.writeBufferSize())
	out.closers = append([]func() error{out.Writer.Flush}, out.closers...)
	out.closers = append(out.closers, f.Close)
	return out, nil
}

func (c *Combination) readBufferSize() int {
	if c.Read != nil && c.Read.BufferSize != nil {
		return *c.Read.BufferSize
	}
	return 0
}

func (c *Combination) writeBufferSize() int {
	if c.Write != nil && c.Write.BufferSize != nil {
		return *c.Write.BufferSize
	}
	return 0
}

func newBufferedReader(r io.Reader, size int) *bufio.Reader {
	if size <= 0 {
		return bufio.NewReader(r)
	}
	return bufio.NewReaderSize(r, size)
}

func newBufferedWriter(w io.Writer, size int) *bufio.Writer {
	if size <= 0 {
		return bufio.NewWriter(w)
	}
	return bufio.NewWriterSize(w, size)
}
