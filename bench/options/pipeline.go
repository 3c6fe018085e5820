package options

import (
	"path/filepath"

	berrors "github.com/wzqhbustb/ionbench/bench/errors"
	"github.com/wzqhbustb/ionbench/bench/task"
)

// Catalog owns format-specific conversion and task construction.
type Catalog interface {
	// Convert writes input, re-encoded to match c, to output and returns the
	// path the task should read. It may return input when no conversion is
	// needed.
	Convert(input, output string, c *Combination) (string, error)
	NewReadTask(path string, c *Combination) (task.Task, error)
	NewWriteTask(path string, c *Combination) (task.Task, error)
}

// TempFiles hands out scratch file locations.
type TempFiles interface {
	NewTempFile(prefix, suffix string) (string, error)
}

// CreateTask converts input to match c and builds the command's task over
// the converted file.
func (c *Combination) CreateTask(input string, cat Catalog, tmp TempFiles) (task.Task, error) {
	converted, err := ConvertInput(c, input, cat, tmp)
	if err != nil {
		return nil, err
	}
	return BuildTask(c, converted, cat)
}

// ConvertInput asks cat to convert input into a scratch file named after
// the input and suffixed for c. Errors from cat are returned unchanged.
func ConvertInput(c *Combination, input string, cat Catalog, tmp TempFiles) (string, error) {
	abs, err := filepath.Abs(input)
	if err != nil {
		return "", berrors.IO("resolve_input", input, err)
	}
	scratch, err := tmp.NewTempFile(filepath.Base(abs), c.Suffix())
	if err != nil {
		return "", err
	}
	return cat.Convert(abs, scratch, c)
}

// BuildTask builds the task for c's command over an already converted input.
func BuildTask(c *Combination, converted string, cat Catalog) (task.Task, error) {
	switch c.Command {
	case CommandRead:
		return cat.NewReadTask(converted, c)
	case CommandWrite:
		return cat.NewWriteTask(converted, c)
	default:
		return nil, berrors.UnsupportedCommand(c.Command.String())
	}
}
