package options

import "fmt"

// Command identifies the direction of a trial. It is chosen by the leading
// annotation of the configuration record.
type Command uint8

const (
	CommandRead Command = iota + 1
	CommandWrite
)

func (c Command) String() string {
	switch c {
	case CommandRead:
		return "read"
	case CommandWrite:
		return "write"
	default:
		return fmt.Sprintf("Command(%d)", c)
	}
}

// ParseCommand maps an annotation to a Command.
func ParseCommand(s string) (Command, bool) {
	switch s {
	case "read":
		return CommandRead, true
	case "write":
		return CommandWrite, true
	}
	return 0, false
}

// Format is the serialization format a trial's input is converted to.
type Format uint8

const (
	FormatIonBinary Format = iota // Ion 1.0 binary
	FormatIonText                 // Ion 1.0 text
)

func (f Format) String() string {
	switch f {
	case FormatIonBinary:
		return "ion_binary"
	case FormatIonText:
		return "ion_text"
	default:
		return fmt.Sprintf("Format(%d)", f)
	}
}

// Suffix returns the conventional file extension for the format, or ""
// for a value outside the enumeration.
func (f Format) Suffix() string {
	switch f {
	case FormatIonBinary:
		return ".10n"
	case FormatIonText:
		return ".ion"
	default:
		return ""
	}
}

// IsBinary reports whether the format is a binary encoding.
func (f Format) IsBinary() bool {
	return f == FormatIonBinary
}

func ParseFormat(s string) (Format, bool) {
	switch s {
	case "ion_binary":
		return FormatIonBinary, true
	case "ion_text":
		return FormatIonText, true
	}
	return 0, false
}

// API selects between incremental (streaming) and materialized (dom) access.
type API uint8

const (
	APIStreaming API = iota
	APIDOM
)

func (a API) String() string {
	switch a {
	case APIStreaming:
		return "streaming"
	case APIDOM:
		return "dom"
	default:
		return fmt.Sprintf("API(%d)", a)
	}
}

func ParseAPI(s string) (API, bool) {
	switch s {
	case "streaming":
		return APIStreaming, true
	case "dom":
		return APIDOM, true
	}
	return 0, false
}

// IOType selects whether tasks work against files or in-memory buffers.
type IOType uint8

const (
	IOTypeFile IOType = iota
	IOTypeBuffer
)

func (t IOType) String() string {
	switch t {
	case IOTypeFile:
		return "file"
	case IOTypeBuffer:
		return "buffer"
	default:
		return fmt.Sprintf("IOType(%d)", t)
	}
}

func ParseIOType(s string) (IOType, bool) {
	switch s {
	case "file":
		return IOTypeFile, true
	case "buffer":
		return IOTypeBuffer, true
	}
	return 0, false
}

// Compression is applied to streams returned by NewOutputStream.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZstd
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", c)
	}
}

// Suffix returns the extension appended after the format suffix.
func (c Compression) Suffix() string {
	switch c {
	case CompressionGzip:
		return ".gz"
	case CompressionZstd:
		return ".zst"
	default:
		return ""
	}
}

func ParseCompression(s string) (Compression, bool) {
	switch s {
	case "none":
		return CompressionNone, true
	case "gzip":
		return CompressionGzip, true
	case "zstd":
		return CompressionZstd, true
	}
	return 0, false
}
