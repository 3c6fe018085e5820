// ionbench/bench/errors/options.go
package errors

// MalformedOptions 配置记录无法解析
func MalformedOptions(reason string, err error) error {
	return New(ErrMalformedOptions).
		Op("parse_options").
		Context("reason", reason).
		Wrap(err).
		Build()
}

// UnsupportedCommand reports a record whose leading annotation is not a known command.
// An empty tag means the record carried no annotation at all.
func UnsupportedCommand(tag string) error {
	b := New(ErrUnsupportedCommand).Op("select_command")
	if tag == "" {
		b.Context("reason", "must be annotated with the command name")
	} else {
		b.Context("tag", tag)
	}
	return b.Build()
}

// TypeMismatch 字段值类型不匹配
func TypeMismatch(field string, expected, actual string) error {
	return New(ErrTypeMismatch).
		Op("translate_field").
		Field(field).
		Context("expected", expected).
		Context("actual", actual).
		Build()
}

// InvalidValue reports a well-typed field value outside its accepted range or set.
func InvalidValue(field string, value interface{}, reason string) error {
	return New(ErrTypeMismatch).
		Op("translate_field").
		Field(field).
		Context("value", value).
		Context("reason", reason).
		Build()
}
