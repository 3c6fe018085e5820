// ionbench/bench/errors/errors.go
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// ErrorCode 错误分类码
type ErrorCode int

const (
	// 通用错误
	ErrUnknown ErrorCode = iota
	ErrInvalidArgument

	// 配置错误
	ErrMalformedOptions
	ErrUnsupportedCommand
	ErrTypeMismatch

	// 格式错误
	ErrUnsupportedFormat
	ErrConversionFailed

	// I/O 错误
	ErrIO
	ErrFileNotFound
)

func (c ErrorCode) String() string {
	switch c {
	case ErrUnknown:
		return "Unknown"
	case ErrInvalidArgument:
		return "InvalidArgument"
	case ErrMalformedOptions:
		return "MalformedOptions"
	case ErrUnsupportedCommand:
		return "UnsupportedCommand"
	case ErrTypeMismatch:
		return "TypeMismatch"
	case ErrUnsupportedFormat:
		return "UnsupportedFormat"
	case ErrConversionFailed:
		return "ConversionFailed"
	case ErrIO:
		return "IO"
	case ErrFileNotFound:
		return "FileNotFound"
	default:
		return fmt.Sprintf("ErrorCode(%d)", c)
	}
}

// BenchError is the structured error returned by every ionbench package.
type BenchError struct {
	Code    ErrorCode              // 错误码
	Op      string                 // 操作描述（如 "parse_options", "convert"）
	Path    string                 // 关联文件路径
	Field   string                 // 关联的配置字段
	Err     error                  // 原始错误（错误链）
	Context map[string]interface{} // 额外上下文
}

func (e *BenchError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("[%s:%s]", e.Code, e.Op))

	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("path=%s", e.Path))
	}
	if len(e.Context) > 0 {
		parts = append(parts, fmt.Sprintf("context=%v", e.Context))
	}
	if e.Err != nil {
		parts = append(parts, fmt.Sprintf("cause=%v", e.Err))
	}

	return "ionbench error: " + strings.Join(parts, " | ")
}

// Unwrap 支持 errors.As/Is
func (e *BenchError) Unwrap() error {
	return e.Err
}

// ErrorBuilder builds a BenchError fluently.
type ErrorBuilder struct {
	err *BenchError
}

func New(code ErrorCode) *ErrorBuilder {
	return &ErrorBuilder{
		err: &BenchError{
			Code:    code,
			Context: make(map[string]interface{}),
		},
	}
}

func (b *ErrorBuilder) Op(op string) *ErrorBuilder {
	b.err.Op = op
	return b
}

func (b *ErrorBuilder) Path(path string) *ErrorBuilder {
	b.err.Path = path
	return b
}

func (b *ErrorBuilder) Field(field string) *ErrorBuilder {
	b.err.Field = field
	return b
}

func (b *ErrorBuilder) Wrap(err error) *ErrorBuilder {
	b.err.Err = err
	return b
}

func (b *ErrorBuilder) Context(key string, value interface{}) *ErrorBuilder {
	b.err.Context[key] = value
	return b
}

func (b *ErrorBuilder) Build() error {
	return b.err
}

// 便捷构造函数

// InvalidArg reports a programming error in the caller's arguments.
func InvalidArg(op string, msg string) error {
	return New(ErrInvalidArgument).Op(op).Context("message", msg).Build()
}

// IO classifies a filesystem failure on path.
func IO(op string, path string, err error) error {
	code := ErrIO
	if errors.Is(err, fs.ErrNotExist) {
		code = ErrFileNotFound
	}
	return New(code).Op(op).Path(path).Wrap(err).Build()
}

// Is 判断错误是否属于某类错误码
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	var be *BenchError
	if errors.As(err, &be) {
		if be.Code == code {
			return true
		}
		if be.Err != nil {
			return Is(be.Err, code)
		}
	}

	return false
}

// IsAny 判断是否属于任何一类错误码
func IsAny(err error, codes ...ErrorCode) bool {
	for _, code := range codes {
		if Is(err, code) {
			return true
		}
	}
	return false
}

// GetCode 获取错误码（如果不是BenchError返回ErrUnknown）
func GetCode(err error) ErrorCode {
	var be *BenchError
	if errors.As(err, &be) {
		return be.Code
	}
	return ErrUnknown
}
