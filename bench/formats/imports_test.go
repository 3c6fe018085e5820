package formats

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	berrors "github.com/wzqhbustb/ionbench/bench/errors"
)

const widgetTables = `$ion_shared_symbol_table::{name: "com.example.widgets", version: 2, symbols: ["name", "tags", "widget"]}
$ion_shared_symbol_table::{name: "com.example.empty", symbols: []}`

func TestLoadImports(t *testing.T) {
	path := writeFile(t, "imports.ion", widgetTables)

	im, err := loadImports(combination(t, `read::{ion_imports: "`+path+`"}`))
	require.NoError(t, err)
	require.Len(t, im.tables, 2)
	assert.Equal(t, "com.example.widgets", im.tables[0].Name())
	assert.Equal(t, 2, im.tables[0].Version())
	assert.Equal(t, "com.example.empty", im.tables[1].Name())
	assert.Equal(t, 1, im.tables[1].Version())
	assert.NotNil(t, im.readerCatalog())
}

func TestLoadImports_NoneConfigured(t *testing.T) {
	im, err := loadImports(combination(t, `read::{}`))
	require.NoError(t, err)
	assert.Nil(t, im)
	assert.True(t, im.empty())
	assert.Nil(t, im.readerCatalog())
	assert.Nil(t, im.writerTables())
}

func TestLoadImports_Malformed(t *testing.T) {
	for name, content := range map[string]string{
		"not annotated":   `{name: "x", symbols: ["a"]}`,
		"not a struct":    `$ion_shared_symbol_table::["a"]`,
		"symbols shape":   `$ion_shared_symbol_table::{name: "x", symbols: "a"}`,
		"symbol type":     `$ion_shared_symbol_table::{name: "x", symbols: [1]}`,
		"no name":         `$ion_shared_symbol_table::{symbols: ["a"]}`,
		"invalid version": `$ion_shared_symbol_table::{name: "x", version: 0}`,
		"invalid ion":     `$ion_shared_symbol_table::{name: `,
	} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, "imports.ion", content)
			_, err := loadImports(combination(t, `read::{ion_imports: "`+path+`"}`))
			require.Error(t, err)
			assert.True(t, berrors.Is(err, berrors.ErrMalformedOptions), err.Error())
		})
	}
}

func TestLoadImports_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.ion")
	_, err := loadImports(combination(t, `read::{ion_imports: "`+path+`"}`))
	assert.True(t, berrors.Is(err, berrors.ErrFileNotFound))
}

func TestConvert_WithImports(t *testing.T) {
	cat := newTestCatalog(t)
	imports := writeFile(t, "imports.ion", widgetTables)
	input := writeFile(t, "in.ion", sample)
	output := filepath.Join(t.TempDir(), "out.10n")

	c := combination(t, `read::{ion_imports: "`+imports+`"}`)
	got, err := cat.Convert(input, output, c)
	require.NoError(t, err)
	assert.Equal(t, output, got)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, ivm))

	im, err := loadImports(c)
	require.NoError(t, err)
	assert.Equal(t, dump(t, []byte(sample), nil), dump(t, data, im.readerCatalog()))
}
