package errors

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrUnknown, "Unknown"},
		{ErrMalformedOptions, "MalformedOptions"},
		{ErrUnsupportedCommand, "UnsupportedCommand"},
		{ErrTypeMismatch, "TypeMismatch"},
		{ErrFileNotFound, "FileNotFound"},
		{ErrorCode(99), "ErrorCode(99)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.code.String())
	}
}

func TestBenchError_Error(t *testing.T) {
	err := New(ErrTypeMismatch).
		Op("translate_field").
		Field("limit").
		Context("expected", "int").
		Build()

	msg := err.Error()
	assert.Contains(t, msg, "[TypeMismatch:translate_field]")
	assert.Contains(t, msg, "field=limit")
	assert.Contains(t, msg, "expected:int")
}

func TestIs_WalksCauseChain(t *testing.T) {
	inner := FileNotFound("/missing")
	outer := New(ErrConversionFailed).Op("convert").Wrap(inner).Build()
	wrapped := fmt.Errorf("trial 3: %w", outer)

	assert.True(t, Is(wrapped, ErrConversionFailed))
	assert.True(t, Is(wrapped, ErrFileNotFound))
	assert.False(t, Is(wrapped, ErrTypeMismatch))
	assert.True(t, IsAny(wrapped, ErrTypeMismatch, ErrFileNotFound))
	assert.Equal(t, ErrConversionFailed, GetCode(wrapped))
	assert.False(t, Is(nil, ErrUnknown))
}

func TestIO_ClassifiesNotExist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope")
	_, openErr := os.Open(path)
	require.Error(t, openErr)

	err := IO("open_paths", path, openErr)
	assert.True(t, Is(err, ErrFileNotFound))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	err = IO("read", path, fmt.Errorf("boom"))
	assert.Equal(t, ErrIO, GetCode(err))
}

func TestUnsupportedCommand(t *testing.T) {
	err := UnsupportedCommand("delete")
	assert.True(t, Is(err, ErrUnsupportedCommand))
	assert.Contains(t, err.Error(), "delete")

	err = UnsupportedCommand("")
	assert.Contains(t, err.Error(), "must be annotated with the command name")
}
