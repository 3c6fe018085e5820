package options

import (
	"math/big"
	"strconv"

	"github.com/amzn/ion-go/ion"

	berrors "github.com/wzqhbustb/ionbench/bench/errors"
)

// Record is a parsed configuration record: the annotations of the top-level
// struct and its fields keyed by name. When a name repeats, the last
// occurrence wins.
type Record struct {
	Annotations []string
	fields      map[string]Value
}

// Field returns the value stored under name.
func (r *Record) Field(name string) (Value, bool) {
	if r == nil {
		return Value{}, false
	}
	v, ok := r.fields[name]
	return v, ok
}

// Value is one decoded field value. Bools, ints, strings and symbols keep
// their content; other types keep only their type, which translators
// reject.
type Value struct {
	Name string
	Type ion.Type
	Null bool

	boolean bool
	integer *big.Int
	text    string
}

// IsText reports whether v is a non-null string or symbol.
func (v Value) IsText() bool {
	return !v.Null && (v.Type == ion.StringType || v.Type == ion.SymbolType)
}

// IsAuto reports whether v is the textual sentinel meaning "use the default".
func (v Value) IsAuto() bool {
	return v.IsText() && v.text == Auto
}

// Text returns the content of a string or symbol value.
func (v Value) Text() (string, bool) {
	if !v.IsText() {
		return "", false
	}
	return v.text, true
}

// Int64 returns the content of an int value that fits in 64 bits.
func (v Value) Int64() (int64, bool) {
	if v.Null || v.Type != ion.IntType || v.integer == nil || !v.integer.IsInt64() {
		return 0, false
	}
	return v.integer.Int64(), true
}

// Bool returns the content of a bool value.
func (v Value) Bool() (bool, bool) {
	if v.Null || v.Type != ion.BoolType {
		return false, false
	}
	return v.boolean, true
}

// Kind names the Ion type of v the way it appears in Ion text, e.g. "int"
// or "null.string".
func (v Value) Kind() string {
	name := typeName(v.Type)
	if v.Null {
		if v.Type == ion.NullType {
			return "null"
		}
		return "null." + name
	}
	return name
}

func typeName(t ion.Type) string {
	switch t {
	case ion.NullType:
		return "null"
	case ion.BoolType:
		return "bool"
	case ion.IntType:
		return "int"
	case ion.FloatType:
		return "float"
	case ion.DecimalType:
		return "decimal"
	case ion.TimestampType:
		return "timestamp"
	case ion.SymbolType:
		return "symbol"
	case ion.StringType:
		return "string"
	case ion.ClobType:
		return "clob"
	case ion.BlobType:
		return "blob"
	case ion.ListType:
		return "list"
	case ion.SexpType:
		return "sexp"
	case ion.StructType:
		return "struct"
	default:
		return "unknown"
	}
}

// ParseRecord parses Ion text holding exactly one top-level struct.
func ParseRecord(text string) (*Record, error) {
	r := ion.NewReaderString(text)
	if !r.Next() {
		if err := r.Err(); err != nil {
			return nil, berrors.MalformedOptions("invalid ion text", err)
		}
		return nil, berrors.MalformedOptions("no value", nil)
	}
	if r.Type() != ion.StructType || r.IsNull() {
		return nil, berrors.MalformedOptions("top-level value is not a struct", nil)
	}

	tokens, err := r.Annotations()
	if err != nil {
		return nil, berrors.MalformedOptions("invalid annotations", err)
	}
	rec, err := readStruct(r)
	if err != nil {
		return nil, berrors.MalformedOptions("invalid struct", err)
	}
	for _, tok := range tokens {
		rec.Annotations = append(rec.Annotations, tokenText(tok))
	}

	if r.Next() {
		return nil, berrors.MalformedOptions("more than one top-level value", nil)
	}
	if err := r.Err(); err != nil {
		return nil, berrors.MalformedOptions("invalid ion text", err)
	}
	return rec, nil
}

// readStruct decodes the struct the reader is positioned on.
func readStruct(r ion.Reader) (*Record, error) {
	if err := r.StepIn(); err != nil {
		return nil, err
	}
	rec := &Record{fields: make(map[string]Value)}
	for r.Next() {
		tok, err := r.FieldName()
		if err != nil {
			return nil, err
		}
		name := ""
		if tok != nil {
			name = tokenText(*tok)
		}
		v, err := readValue(r, name)
		if err != nil {
			return nil, err
		}
		rec.fields[name] = v
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	if err := r.StepOut(); err != nil {
		return nil, err
	}
	return rec, nil
}

func readValue(r ion.Reader, name string) (Value, error) {
	v := Value{Name: name, Type: r.Type()}
	if r.IsNull() {
		v.Null = true
		return v, nil
	}

	switch r.Type() {
	case ion.BoolType:
		b, err := r.BoolValue()
		if err != nil {
			return v, err
		}
		v.boolean = *b
	case ion.IntType:
		i, err := r.BigIntValue()
		if err != nil {
			return v, err
		}
		v.integer = i
	case ion.StringType:
		s, err := r.StringValue()
		if err != nil {
			return v, err
		}
		v.text = *s
	case ion.SymbolType:
		tok, err := r.SymbolValue()
		if err != nil {
			return v, err
		}
		v.text = tokenText(*tok)
	}
	return v, nil
}

// tokenText returns the text of a symbol token, or its $<sid> form when the
// text is unknown.
func tokenText(tok ion.SymbolToken) string {
	if tok.Text != nil {
		return *tok.Text
	}
	return "$" + strconv.FormatInt(tok.LocalSID, 10)
}
