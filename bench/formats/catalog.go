// Package formats converts benchmark inputs between Ion encodings and
// builds the read and write tasks that measure them.
package formats

import (
	"io"
	"log/slog"

	"github.com/amzn/ion-go/ion"

	berrors "github.com/wzqhbustb/ionbench/bench/errors"
	"github.com/wzqhbustb/ionbench/bench/options"
	"github.com/wzqhbustb/ionbench/bench/task"
	"github.com/wzqhbustb/ionbench/bench/tempfile"
)

// Config holds catalog configuration
type Config struct {
	Logger *slog.Logger

	// ChunkSize is the slice size used to consume lobs when a read trial
	// sets ion_use_lob_chunks.
	ChunkSize int

	// TempFiles supplies the output locations of write tasks.
	TempFiles options.TempFiles
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Logger:    slog.Default(),
		ChunkSize: 4096,
		TempFiles: tempfile.New(""),
	}
}

// Option is a functional option for configuration
type Option func(*Config)

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithChunkSize sets the lob chunk size. Non-positive sizes are ignored.
func WithChunkSize(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.ChunkSize = n
		}
	}
}

// WithTempFiles sets where write tasks put their output.
func WithTempFiles(t options.TempFiles) Option {
	return func(c *Config) {
		if t != nil {
			c.TempFiles = t
		}
	}
}

// Catalog is the Ion implementation of options.Catalog.
type Catalog struct {
	config *Config
	logger *slog.Logger
}

var _ options.Catalog = (*Catalog)(nil)

// New creates a catalog.
func New(opts ...Option) *Catalog {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Catalog{config: cfg, logger: cfg.Logger}
}

// NewReadTask builds a task that fully reads path, or every entry of the
// combination's Paths when it has any.
func (cat *Catalog) NewReadTask(path string, c *options.Combination) (task.Task, error) {
	if c.Read == nil {
		return nil, berrors.InvalidArg("new_read_task", "combination is not a read combination")
	}
	paths := []string{path}
	if c.Read.Paths != nil {
		paths = c.Read.Paths
	}
	cat.logger.Debug("formats: read task created",
		slog.String("format", c.Format.String()),
		slog.String("api", c.API.String()),
		slog.String("io_type", c.IOType.String()),
		slog.Int("inputs", len(paths)))
	return &readTask{cat: cat, c: c, paths: paths}, nil
}

// NewWriteTask builds a task that re-writes the values of path.
func (cat *Catalog) NewWriteTask(path string, c *options.Combination) (task.Task, error) {
	if c.Write == nil {
		return nil, berrors.InvalidArg("new_write_task", "combination is not a write combination")
	}
	if err := checkFormat("new_write_task", c.Format); err != nil {
		return nil, err
	}
	cat.logger.Debug("formats: write task created",
		slog.String("format", c.Format.String()),
		slog.String("api", c.API.String()),
		slog.String("io_type", c.IOType.String()),
		slog.String("input", path))
	return &writeTask{cat: cat, c: c, input: path}, nil
}

func newReader(in io.Reader, symbols ion.Catalog) ion.Reader {
	if symbols == nil {
		return ion.NewReader(in)
	}
	return ion.NewReaderCat(in, symbols)
}

func newWriter(out io.Writer, c *options.Combination, imports []ion.SharedSymbolTable) (ion.Writer, error) {
	switch c.Format {
	case options.FormatIonBinary:
		return ion.NewBinaryWriter(out, imports...), nil
	case options.FormatIonText:
		if c.Write != nil && c.Write.TextPretty {
			return ion.NewTextWriterOpts(out, ion.TextWriterPretty), nil
		}
		return ion.NewTextWriter(out), nil
	default:
		return nil, berrors.UnsupportedFormat("new_writer", c.Format.String())
	}
}

// checkFormat rejects formats newWriter cannot encode before any file is
// touched.
func checkFormat(op string, f options.Format) error {
	switch f {
	case options.FormatIonBinary, options.FormatIonText:
		return nil
	}
	return berrors.UnsupportedFormat(op, f.String())
}
