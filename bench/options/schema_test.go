package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_NamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range Schema() {
		assert.False(t, seen[d.Name], "duplicate field %s", d.Name)
		seen[d.Name] = true
		assert.NotEmpty(t, d.Default, d.Name)
	}
	for _, name := range []string{
		"preallocation", "flush_period", "format", "ion_api",
		"io_type", "ion_imports", "limit", "paths",
	} {
		assert.True(t, seen[name], "missing field %s", name)
	}
}

func TestSchema_ReturnsCopy(t *testing.T) {
	s := Schema()
	s[0].Name = "mutated"
	assert.Equal(t, "preallocation", Schema()[0].Name)
}

func TestLookup(t *testing.T) {
	d, ok := Lookup("limit")
	require.True(t, ok)
	assert.Equal(t, ShapeInt, d.Shape)
	assert.Equal(t, ScopeCommon, d.Scope)
	assert.Equal(t, "unbounded", d.Default)

	d, ok = Lookup("paths")
	require.True(t, ok)
	assert.Equal(t, ScopeRead, d.Scope)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestEnums_RoundTripNames(t *testing.T) {
	for _, f := range []Format{FormatIonBinary, FormatIonText} {
		got, ok := ParseFormat(f.String())
		assert.True(t, ok)
		assert.Equal(t, f, got)
	}
	for _, a := range []API{APIStreaming, APIDOM} {
		got, ok := ParseAPI(a.String())
		assert.True(t, ok)
		assert.Equal(t, a, got)
	}
	for _, io := range []IOType{IOTypeFile, IOTypeBuffer} {
		got, ok := ParseIOType(io.String())
		assert.True(t, ok)
		assert.Equal(t, io, got)
	}
	for _, c := range []Compression{CompressionNone, CompressionGzip, CompressionZstd} {
		got, ok := ParseCompression(c.String())
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}
	for _, c := range []Command{CommandRead, CommandWrite} {
		got, ok := ParseCommand(c.String())
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}
	_, ok := ParseCommand("")
	assert.False(t, ok)
	assert.Equal(t, ".10n", FormatIonBinary.Suffix())
	assert.Equal(t, ".ion", FormatIonText.Suffix())
	assert.Empty(t, Format(9).Suffix())
	assert.True(t, FormatIonBinary.IsBinary())
	assert.False(t, FormatIonText.IsBinary())
}
