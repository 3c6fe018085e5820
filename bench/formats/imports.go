package formats

import (
	"fmt"

	"github.com/amzn/ion-go/ion"

	berrors "github.com/wzqhbustb/ionbench/bench/errors"
	"github.com/wzqhbustb/ionbench/bench/options"
)

const sharedTableAnnotation = "$ion_shared_symbol_table"

// imports are the shared symbol tables named by ion_imports.
type imports struct {
	tables  []ion.SharedSymbolTable
	catalog ion.Catalog
}

func (im *imports) empty() bool {
	return im == nil || len(im.tables) == 0
}

// readerCatalog returns the catalog readers resolve imports against, or
// nil when there are none.
func (im *imports) readerCatalog() ion.Catalog {
	if im.empty() {
		return nil
	}
	return im.catalog
}

func (im *imports) writerTables() []ion.SharedSymbolTable {
	if im == nil {
		return nil
	}
	return im.tables
}

// loadImports decodes the combination's imports file. A combination with
// no imports file yields nil.
func loadImports(c *options.Combination) (*imports, error) {
	if c.ImportsFile == "" {
		return nil, nil
	}

	in, err := c.NewInputStream(c.ImportsFile)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	r := ion.NewReader(in)
	var tables []ion.SharedSymbolTable
	for r.Next() {
		sst, err := decodeSharedTable(r)
		if err != nil {
			return nil, berrors.MalformedOptions("ion_imports: "+err.Error(), err)
		}
		tables = append(tables, sst)
	}
	if err := r.Err(); err != nil {
		return nil, berrors.MalformedOptions("ion_imports: invalid Ion", err)
	}
	return &imports{tables: tables, catalog: ion.NewCatalog(tables...)}, nil
}

func decodeSharedTable(r ion.Reader) (ion.SharedSymbolTable, error) {
	annotations, err := r.Annotations()
	if err != nil {
		return nil, err
	}
	if len(annotations) == 0 || annotations[0].Text == nil || *annotations[0].Text != sharedTableAnnotation {
		return nil, fmt.Errorf("value is not annotated with %s", sharedTableAnnotation)
	}
	if r.Type() != ion.StructType || r.IsNull() {
		return nil, fmt.Errorf("shared symbol table must be a struct, got %v", r.Type())
	}

	var (
		name    string
		version = 1
		symbols []string
	)
	if err := r.StepIn(); err != nil {
		return nil, err
	}
	for r.Next() {
		field, err := r.FieldName()
		if err != nil {
			return nil, err
		}
		if field == nil || field.Text == nil || r.IsNull() {
			continue
		}
		switch *field.Text {
		case "name":
			v, err := r.StringValue()
			if err != nil {
				return nil, err
			}
			if v != nil {
				name = *v
			}
		case "version":
			v, err := r.BigIntValue()
			if err != nil {
				return nil, err
			}
			if !v.IsInt64() || v.Int64() < 1 {
				return nil, fmt.Errorf("invalid version %v", v)
			}
			version = int(v.Int64())
		case "symbols":
			if symbols, err = readSymbolList(r); err != nil {
				return nil, err
			}
		}
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	if err := r.StepOut(); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, fmt.Errorf("shared symbol table has no name")
	}
	return ion.NewSharedSymbolTable(name, version, symbols), nil
}

func readSymbolList(r ion.Reader) ([]string, error) {
	if r.Type() != ion.ListType {
		return nil, fmt.Errorf("symbols must be a list, got %v", r.Type())
	}
	if err := r.StepIn(); err != nil {
		return nil, err
	}
	var symbols []string
	for r.Next() {
		if r.Type() != ion.StringType || r.IsNull() {
			return nil, fmt.Errorf("symbols must hold strings, got %v", r.Type())
		}
		v, err := r.StringValue()
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, *v)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return symbols, r.StepOut()
}
