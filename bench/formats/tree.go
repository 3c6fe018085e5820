package formats

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/amzn/ion-go/ion"
)

// node is one materialized Ion value.
type node struct {
	field       *ion.SymbolToken
	annotations []ion.SymbolToken
	typ         ion.Type
	null        bool

	boolean   bool
	integer   *big.Int
	float     float64
	decimal   *ion.Decimal
	timestamp ion.Timestamp
	symbol    ion.SymbolToken
	text      string
	bytes     []byte
	children  []*node
}

// loadOptions controls how values are materialized.
type loadOptions struct {
	// exactDecimals keeps decimals as *ion.Decimal; otherwise they are
	// projected to float64.
	exactDecimals bool
}

// loadNode materializes the value r is positioned on.
func loadNode(r ion.Reader, inStruct bool, opts loadOptions) (*node, error) {
	n := &node{typ: r.Type(), null: r.IsNull()}

	if inStruct {
		name, err := r.FieldName()
		if err != nil {
			return nil, err
		}
		n.field = name
	}
	annotations, err := r.Annotations()
	if err != nil {
		return nil, err
	}
	n.annotations = annotations
	if n.null {
		return n, nil
	}

	switch n.typ {
	case ion.BoolType:
		v, err := r.BoolValue()
		if err != nil {
			return nil, err
		}
		n.boolean = *v
	case ion.IntType:
		if n.integer, err = r.BigIntValue(); err != nil {
			return nil, err
		}
	case ion.FloatType:
		v, err := r.FloatValue()
		if err != nil {
			return nil, err
		}
		n.float = *v
	case ion.DecimalType:
		v, err := r.DecimalValue()
		if err != nil {
			return nil, err
		}
		if opts.exactDecimals {
			n.decimal = v
		} else if n.float, err = decimalToFloat(v); err != nil {
			return nil, err
		}
	case ion.TimestampType:
		v, err := r.TimestampValue()
		if err != nil {
			return nil, err
		}
		n.timestamp = *v
	case ion.SymbolType:
		v, err := r.SymbolValue()
		if err != nil {
			return nil, err
		}
		n.symbol = *v
	case ion.StringType:
		v, err := r.StringValue()
		if err != nil {
			return nil, err
		}
		n.text = *v
	case ion.BlobType, ion.ClobType:
		if n.bytes, err = r.ByteValue(); err != nil {
			return nil, err
		}
	case ion.ListType, ion.SexpType, ion.StructType:
		if err := r.StepIn(); err != nil {
			return nil, err
		}
		for r.Next() {
			child, err := loadNode(r, n.typ == ion.StructType, opts)
			if err != nil {
				return nil, err
			}
			n.children = append(n.children, child)
		}
		if err := r.Err(); err != nil {
			return nil, err
		}
		if err := r.StepOut(); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// writeTo writes n to w. Decimals projected to float64 are written back
// as floats.
func (n *node) writeTo(w ion.Writer) error {
	if n.field != nil {
		if err := w.FieldName(*n.field); err != nil {
			return err
		}
	}
	if len(n.annotations) > 0 {
		if err := w.Annotations(n.annotations...); err != nil {
			return err
		}
	}
	if n.null {
		if n.typ == ion.NullType {
			return w.WriteNull()
		}
		return w.WriteNullType(n.typ)
	}

	switch n.typ {
	case ion.BoolType:
		return w.WriteBool(n.boolean)
	case ion.IntType:
		return w.WriteBigInt(n.integer)
	case ion.FloatType:
		return w.WriteFloat(n.float)
	case ion.DecimalType:
		if n.decimal == nil {
			return w.WriteFloat(n.float)
		}
		return w.WriteDecimal(n.decimal)
	case ion.TimestampType:
		return w.WriteTimestamp(n.timestamp)
	case ion.SymbolType:
		return w.WriteSymbol(n.symbol)
	case ion.StringType:
		return w.WriteString(n.text)
	case ion.ClobType:
		return w.WriteClob(n.bytes)
	case ion.BlobType:
		return w.WriteBlob(n.bytes)
	case ion.ListType:
		return n.writeContainer(w, w.BeginList, w.EndList)
	case ion.SexpType:
		return n.writeContainer(w, w.BeginSexp, w.EndSexp)
	case ion.StructType:
		return n.writeContainer(w, w.BeginStruct, w.EndStruct)
	}
	return nil
}

func (n *node) writeContainer(w ion.Writer, begin, end func() error) error {
	if err := begin(); err != nil {
		return err
	}
	for _, child := range n.children {
		if err := child.writeTo(w); err != nil {
			return err
		}
	}
	return end()
}

// size counts n and all of its descendants.
func (n *node) size() int {
	total := 1
	for _, child := range n.children {
		total += child.size()
	}
	return total
}

var decimalExponent = strings.NewReplacer("d", "e", "D", "e")

// decimalToFloat projects an Ion decimal to the nearest float64. Decimals
// beyond the float64 range are an error.
func decimalToFloat(d *ion.Decimal) (float64, error) {
	f, err := strconv.ParseFloat(decimalExponent.Replace(d.String()), 64)
	if err != nil {
		return 0, fmt.Errorf("decimal %s: %w", d, err)
	}
	return f, nil
}
