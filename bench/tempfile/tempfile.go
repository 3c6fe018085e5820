// Package tempfile hands out scratch file locations for converted inputs
// and write-task outputs.
package tempfile

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	berrors "github.com/wzqhbustb/ionbench/bench/errors"
)

// DefaultDirName is the directory created under os.TempDir when no
// directory is given.
const DefaultDirName = "ionbench"

// Dir is a directory of uniquely named scratch files.
type Dir struct {
	path string
}

// New returns a Dir rooted at path, or at os.TempDir()/ionbench when path
// is empty. The directory is created on first use.
func New(path string) *Dir {
	if path == "" {
		path = filepath.Join(os.TempDir(), DefaultDirName)
	}
	return &Dir{path: path}
}

// Path returns the root directory.
func (d *Dir) Path() string {
	return d.path
}

// NewTempFile returns a fresh path named <prefix>-<uuid><suffix>. The file
// itself is not created.
func (d *Dir) NewTempFile(prefix, suffix string) (string, error) {
	if err := os.MkdirAll(d.path, 0755); err != nil {
		return "", berrors.IO("create_temp_dir", d.path, err)
	}
	return filepath.Join(d.path, prefix+"-"+uuid.New().String()+suffix), nil
}

// Cleanup removes the directory and everything in it.
func (d *Dir) Cleanup() error {
	if err := os.RemoveAll(d.path); err != nil {
		return berrors.IO("remove_temp_dir", d.path, err)
	}
	return nil
}
