// ionbench/bench/errors/io.go
package errors

// FileNotFound 文件不存在
func FileNotFound(path string) error {
	return New(ErrFileNotFound).
		Op("open_file").
		Path(path).
		Build()
}

// ConversionFailed 输入文件转换失败
func ConversionFailed(path string, target string, err error) error {
	return New(ErrConversionFailed).
		Op("convert").
		Path(path).
		Context("target", target).
		Wrap(err).
		Build()
}

// UnsupportedFormat reports a format the catalog cannot handle.
func UnsupportedFormat(op string, format string) error {
	return New(ErrUnsupportedFormat).
		Op(op).
		Context("format", format).
		Build()
}
