package options

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wzqhbustb/ionbench/bench/task"
)

type fakeTempFiles struct {
	dir      string
	prefixes []string
	suffixes []string
}

func (f *fakeTempFiles) NewTempFile(prefix, suffix string) (string, error) {
	f.prefixes = append(f.prefixes, prefix)
	f.suffixes = append(f.suffixes, suffix)
	return filepath.Join(f.dir, prefix+"-scratch"+suffix), nil
}

type fakeCatalog struct {
	convertErr error
	noop       bool

	convertedFrom string
	convertedTo   string
	readPath      string
	writePath     string
}

func (f *fakeCatalog) Convert(input, output string, _ *Combination) (string, error) {
	f.convertedFrom, f.convertedTo = input, output
	if f.convertErr != nil {
		return "", f.convertErr
	}
	if f.noop {
		return input, nil
	}
	return output, nil
}

func (f *fakeCatalog) NewReadTask(path string, _ *Combination) (task.Task, error) {
	f.readPath = path
	return &task.Funcs{}, nil
}

func (f *fakeCatalog) NewWriteTask(path string, _ *Combination) (task.Task, error) {
	f.writePath = path
	return &task.Funcs{}, nil
}

func TestCreateTask_ReadUsesConvertedPath(t *testing.T) {
	c, err := From(`read::{format: ion_text}`)
	require.NoError(t, err)

	cat := &fakeCatalog{}
	tmp := &fakeTempFiles{dir: t.TempDir()}
	input := filepath.Join(t.TempDir(), "data.10n")

	tk, err := c.CreateTask(input, cat, tmp)
	require.NoError(t, err)
	require.NotNil(t, tk)

	assert.Equal(t, input, cat.convertedFrom)
	assert.Equal(t, cat.convertedTo, cat.readPath)
	assert.NotEqual(t, input, cat.readPath)
	assert.Empty(t, cat.writePath)
	assert.Equal(t, []string{"data.10n"}, tmp.prefixes)
	assert.Equal(t, []string{".ion"}, tmp.suffixes)
}

func TestCreateTask_WriteDispatch(t *testing.T) {
	c, err := From(`write::{compression: gzip}`)
	require.NoError(t, err)

	cat := &fakeCatalog{}
	tmp := &fakeTempFiles{dir: t.TempDir()}

	_, err = c.CreateTask("relative/input.ion", cat, tmp)
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(cat.convertedFrom), "input path must be resolved")
	assert.Equal(t, cat.convertedTo, cat.writePath)
	assert.Empty(t, cat.readPath)
	assert.Equal(t, []string{".10n.gz"}, tmp.suffixes)
}

func TestCreateTask_NoopConversionKeepsInput(t *testing.T) {
	c, err := From(`read::{}`)
	require.NoError(t, err)

	cat := &fakeCatalog{noop: true}
	input := filepath.Join(t.TempDir(), "data.10n")

	_, err = c.CreateTask(input, cat, &fakeTempFiles{dir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, input, cat.readPath)
}

func TestCreateTask_ConversionFailurePropagates(t *testing.T) {
	c, err := From(`read::{}`)
	require.NoError(t, err)

	boom := errors.New("convert failed")
	cat := &fakeCatalog{convertErr: boom}

	tk, err := c.CreateTask("in.ion", cat, &fakeTempFiles{dir: t.TempDir()})
	assert.Nil(t, tk)
	assert.Same(t, boom, err)
	assert.Empty(t, cat.readPath, "no task may be built after a failed conversion")
}

func TestBuildTask_UnknownCommand(t *testing.T) {
	_, err := BuildTask(&Combination{}, "x", &fakeCatalog{})
	assert.Error(t, err)
}
