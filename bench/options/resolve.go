package options

import (
	"math"

	berrors "github.com/wzqhbustb/ionbench/bench/errors"
)

// Auto is the text value that selects a field's default, exactly as if the
// field were absent.
const Auto = "auto"

// Translator converts a present, non-auto field value to T.
type Translator[T any] func(v Value) (T, error)

// Resolve returns def when name is absent from rec or holds the Auto
// sentinel, without calling translate. Otherwise it returns translate's
// result, error included.
func Resolve[T any](rec *Record, name string, translate Translator[T], def T) (T, error) {
	v, ok := rec.Field(name)
	if !ok || v.IsAuto() {
		return def, nil
	}
	return translate(v)
}

// Int translates an int value that fits in an int.
func Int(v Value) (int, error) {
	i, ok := v.Int64()
	if !ok {
		return 0, berrors.TypeMismatch(v.Name, "int", v.Kind())
	}
	if i < math.MinInt || i > math.MaxInt {
		return 0, berrors.InvalidValue(v.Name, i, "out of range")
	}
	return int(i), nil
}

// NonNegativeInt translates an int value that must not be negative.
func NonNegativeInt(v Value) (int, error) {
	i, err := Int(v)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, berrors.InvalidValue(v.Name, i, "must not be negative")
	}
	return i, nil
}

// OptionalInt translates a non-negative int into a pointer so that callers
// can tell "unset" from zero.
func OptionalInt(v Value) (*int, error) {
	i, err := NonNegativeInt(v)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Text translates a string or symbol value.
func Text(v Value) (string, error) {
	s, ok := v.Text()
	if !ok {
		return "", berrors.TypeMismatch(v.Name, "text", v.Kind())
	}
	return s, nil
}

// OptionalText translates a string or symbol value into a pointer so that
// an explicit empty string is kept apart from absence.
func OptionalText(v Value) (*string, error) {
	s, err := Text(v)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Bool translates a bool value.
func Bool(v Value) (bool, error) {
	b, ok := v.Bool()
	if !ok {
		return false, berrors.TypeMismatch(v.Name, "bool", v.Kind())
	}
	return b, nil
}

// Enum builds a translator for text values naming one member of an
// enumeration. Unknown names are rejected with the allowed set in context.
func Enum[E any](parse func(string) (E, bool), allowed ...string) Translator[E] {
	return func(v Value) (E, error) {
		var zero E
		s, err := Text(v)
		if err != nil {
			return zero, err
		}
		e, ok := parse(s)
		if !ok {
			return zero, berrors.New(berrors.ErrTypeMismatch).
				Op("translate_field").
				Field(v.Name).
				Context("value", s).
				Context("allowed", allowed).
				Build()
		}
		return e, nil
	}
}
