package options

import (
	"math"
	"slices"
)

// Shape is the Ion shape a field value must have.
type Shape string

const (
	ShapeInt  Shape = "int"
	ShapeText Shape = "text"
	ShapeBool Shape = "bool"
	ShapeEnum Shape = "enum"
)

// Scope says which commands read a field.
type Scope string

const (
	ScopeCommon Scope = "common"
	ScopeRead   Scope = "read"
	ScopeWrite  Scope = "write"
)

// Descriptor is the untyped, documentation view of one schema entry.
type Descriptor struct {
	Name    string
	Shape   Shape
	Scope   Scope
	Default string
}

// Field binds a field name to its translator and default.
type Field[T any] struct {
	Name      string
	Shape     Shape
	Scope     Scope
	Translate Translator[T]
	Default   T
	// DefaultDoc describes Default in the schema table.
	DefaultDoc string
}

// Resolve reads the field from rec, falling back to the field's default.
func (f Field[T]) Resolve(rec *Record) (T, error) {
	return Resolve(rec, f.Name, f.Translate, f.Default)
}

func (f Field[T]) Describe() Descriptor {
	return Descriptor{Name: f.Name, Shape: f.Shape, Scope: f.Scope, Default: f.DefaultDoc}
}

var (
	PreallocationField = Field[*int]{
		Name: "preallocation", Shape: ShapeInt, Scope: ScopeCommon,
		Translate: OptionalInt, DefaultDoc: "none",
	}
	FlushPeriodField = Field[*int]{
		Name: "flush_period", Shape: ShapeInt, Scope: ScopeCommon,
		Translate: OptionalInt, DefaultDoc: "none",
	}
	FormatField = Field[Format]{
		Name: "format", Shape: ShapeEnum, Scope: ScopeCommon,
		Translate: Enum(ParseFormat, "ion_binary", "ion_text"),
		Default:   FormatIonBinary, DefaultDoc: "ion_binary",
	}
	APIField = Field[API]{
		Name: "ion_api", Shape: ShapeEnum, Scope: ScopeCommon,
		Translate: Enum(ParseAPI, "streaming", "dom"),
		Default:   APIStreaming, DefaultDoc: "streaming",
	}
	IOTypeField = Field[IOType]{
		Name: "io_type", Shape: ShapeEnum, Scope: ScopeCommon,
		Translate: Enum(ParseIOType, "file", "buffer"),
		Default:   IOTypeFile, DefaultDoc: "file",
	}
	ImportsField = Field[string]{
		Name: "ion_imports", Shape: ShapeText, Scope: ScopeCommon,
		Translate: Text, DefaultDoc: "none",
	}
	LimitField = Field[int]{
		Name: "limit", Shape: ShapeInt, Scope: ScopeCommon,
		Translate: NonNegativeInt, Default: math.MaxInt, DefaultDoc: "unbounded",
	}
	CompressionField = Field[Compression]{
		Name: "compression", Shape: ShapeEnum, Scope: ScopeCommon,
		Translate: Enum(ParseCompression, "none", "gzip", "zstd"),
		Default:   CompressionNone, DefaultDoc: "none",
	}

	PathsField = Field[*string]{
		Name: "paths", Shape: ShapeText, Scope: ScopeRead,
		Translate: OptionalText, DefaultDoc: "none",
	}
	LobChunksField = Field[bool]{
		Name: "ion_use_lob_chunks", Shape: ShapeBool, Scope: ScopeRead,
		Translate: Bool, DefaultDoc: "false",
	}
	BigDecimalsField = Field[bool]{
		Name: "ion_use_big_decimals", Shape: ShapeBool, Scope: ScopeRead,
		Translate: Bool, DefaultDoc: "false",
	}
	ReaderBufferField = Field[*int]{
		Name: "ion_reader_buffer_size", Shape: ShapeInt, Scope: ScopeRead,
		Translate: OptionalInt, DefaultDoc: "none",
	}

	WriterBufferField = Field[*int]{
		Name: "ion_writer_buffer_size", Shape: ShapeInt, Scope: ScopeWrite,
		Translate: OptionalInt, DefaultDoc: "none",
	}
	TextPrettyField = Field[bool]{
		Name: "ion_text_pretty", Shape: ShapeBool, Scope: ScopeWrite,
		Translate: Bool, DefaultDoc: "false",
	}
)

var schema = []Descriptor{
	PreallocationField.Describe(),
	FlushPeriodField.Describe(),
	FormatField.Describe(),
	APIField.Describe(),
	IOTypeField.Describe(),
	ImportsField.Describe(),
	LimitField.Describe(),
	CompressionField.Describe(),
	PathsField.Describe(),
	LobChunksField.Describe(),
	BigDecimalsField.Describe(),
	ReaderBufferField.Describe(),
	WriterBufferField.Describe(),
	TextPrettyField.Describe(),
}

// Schema returns a copy of the schema table in declaration order.
func Schema() []Descriptor {
	return slices.Clone(schema)
}

// Lookup returns the schema entry for name.
func Lookup(name string) (Descriptor, bool) {
	for _, d := range schema {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}
