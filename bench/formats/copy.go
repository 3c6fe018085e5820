package formats

import (
	"github.com/amzn/ion-go/ion"
)

// copyValue writes the value r is positioned on, with its field name and
// annotations, to w.
func copyValue(r ion.Reader, w ion.Writer, inStruct bool) error {
	if inStruct {
		name, err := r.FieldName()
		if err != nil {
			return err
		}
		if name != nil {
			if err := w.FieldName(*name); err != nil {
				return err
			}
		}
	}

	annotations, err := r.Annotations()
	if err != nil {
		return err
	}
	if len(annotations) > 0 {
		if err := w.Annotations(annotations...); err != nil {
			return err
		}
	}

	if r.IsNull() {
		if r.Type() == ion.NullType {
			return w.WriteNull()
		}
		return w.WriteNullType(r.Type())
	}

	switch r.Type() {
	case ion.BoolType:
		v, err := r.BoolValue()
		if err != nil {
			return err
		}
		return w.WriteBool(*v)
	case ion.IntType:
		v, err := r.BigIntValue()
		if err != nil {
			return err
		}
		return w.WriteBigInt(v)
	case ion.FloatType:
		v, err := r.FloatValue()
		if err != nil {
			return err
		}
		return w.WriteFloat(*v)
	case ion.DecimalType:
		v, err := r.DecimalValue()
		if err != nil {
			return err
		}
		return w.WriteDecimal(v)
	case ion.TimestampType:
		v, err := r.TimestampValue()
		if err != nil {
			return err
		}
		return w.WriteTimestamp(*v)
	case ion.SymbolType:
		v, err := r.SymbolValue()
		if err != nil {
			return err
		}
		return w.WriteSymbol(*v)
	case ion.StringType:
		v, err := r.StringValue()
		if err != nil {
			return err
		}
		return w.WriteString(*v)
	case ion.ClobType:
		v, err := r.ByteValue()
		if err != nil {
			return err
		}
		return w.WriteClob(v)
	case ion.BlobType:
		v, err := r.ByteValue()
		if err != nil {
			return err
		}
		return w.WriteBlob(v)
	case ion.ListType:
		if err := w.BeginList(); err != nil {
			return err
		}
		if err := copyChildren(r, w, false); err != nil {
			return err
		}
		return w.EndList()
	case ion.SexpType:
		if err := w.BeginSexp(); err != nil {
			return err
		}
		if err := copyChildren(r, w, false); err != nil {
			return err
		}
		return w.EndSexp()
	case ion.StructType:
		if err := w.BeginStruct(); err != nil {
			return err
		}
		if err := copyChildren(r, w, true); err != nil {
			return err
		}
		return w.EndStruct()
	}
	return nil
}

func copyChildren(r ion.Reader, w ion.Writer, inStruct bool) error {
	if err := r.StepIn(); err != nil {
		return err
	}
	for r.Next() {
		if err := copyValue(r, w, inStruct); err != nil {
			return err
		}
	}
	if err := r.Err(); err != nil {
		return err
	}
	return r.StepOut()
}

// copyStream copies at most limit top-level values from r to w and
// returns how many it copied. Every flushEvery values the writer's stream
// is finished and a new one begun; zero disables that.
func copyStream(r ion.Reader, w ion.Writer, limit, flushEvery int) (int, error) {
	n := 0
	for n < limit && r.Next() {
		if err := copyValue(r, w, false); err != nil {
			return n, err
		}
		n++
		if flushEvery > 0 && n%flushEvery == 0 {
			if err := w.Finish(); err != nil {
				return n, err
			}
		}
	}
	return n, r.Err()
}
