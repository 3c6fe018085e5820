package formats

import (
	"bytes"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/amzn/ion-go/ion"
	"github.com/stretchr/testify/require"

	"github.com/wzqhbustb/ionbench/bench/options"
	"github.com/wzqhbustb/ionbench/bench/tempfile"
)

const sample = `ann::{name: "widget", tags: [red, blue], size: 12, weight: 1.25, ratio: 0.5e0, ok: true, raw: {{aGVsbG8=}}, missing: null.string, expr: (a b)} 42 "tail"`

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	return New(
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithTempFiles(tempfile.New(t.TempDir())),
		WithChunkSize(2),
	)
}

func combination(t *testing.T, text string) *options.Combination {
	t.Helper()
	c, err := options.From(text)
	require.NoError(t, err)
	return c
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// readAll returns the decompressed content of path.
func readAll(t *testing.T, path string) []byte {
	t.Helper()
	in, err := combination(t, `read::{}`).NewInputStream(path)
	require.NoError(t, err)
	defer in.Close()
	data, err := io.ReadAll(in)
	require.NoError(t, err)
	return data
}

// dump re-encodes data as Ion text so encodings can be compared.
func dump(t *testing.T, data []byte, symbols ion.Catalog) string {
	t.Helper()
	var buf bytes.Buffer
	w := ion.NewTextWriter(&buf)
	_, err := copyStream(newReader(bytes.NewReader(data), symbols), w, math.MaxInt, 0)
	require.NoError(t, err)
	require.NoError(t, w.Finish())
	return buf.String()
}

func countValues(t *testing.T, data []byte, symbols ion.Catalog) int {
	t.Helper()
	r := newReader(bytes.NewReader(data), symbols)
	n := 0
	for r.Next() {
		n++
	}
	require.NoError(t, r.Err())
	return n
}
