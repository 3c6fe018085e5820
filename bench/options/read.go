package options

import (
	"bufio"
	"math"
	"os"

	berrors "github.com/wzqhbustb/ionbench/bench/errors"
)

// Read holds the options only a read trial uses.
type Read struct {
	// Paths lists the input files to read, in the order the paths file gave
	// them. Nil means the task reads the single converted input instead.
	Paths []string

	UseLobChunks   bool // consume blobs and clobs in fixed-size chunks
	UseBigDecimals bool // keep decimals exact instead of projecting to float64
	BufferSize     *int // input stream buffer, nil for the bufio default
}

func decodeRead(rec *Record) (*Read, error) {
	r := &Read{}

	pathsFile, err := PathsField.Resolve(rec)
	if err != nil {
		return nil, err
	}
	if pathsFile != nil {
		if r.Paths, err = ReadPathsFile(*pathsFile); err != nil {
			return nil, err
		}
	}

	if r.UseLobChunks, err = LobChunksField.Resolve(rec); err != nil {
		return nil, err
	}
	if r.UseBigDecimals, err = BigDecimalsField.Resolve(rec); err != nil {
		return nil, err
	}
	if r.BufferSize, err = ReaderBufferField.Resolve(rec); err != nil {
		return nil, err
	}
	return r, nil
}

// ReadPathsFile reads one path per line, stopping at the first empty line
// or at end of file. The result is never nil.
func ReadPathsFile(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, berrors.IO("open_paths", name, err)
	}
	defer f.Close()

	paths := make([]string, 0)
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 4096), math.MaxInt)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			break
		}
		paths = append(paths, line)
	}
	if err := sc.Err(); err != nil {
		return nil, berrors.IO("read_paths", name, err)
	}
	return paths, nil
}
