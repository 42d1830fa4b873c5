// Package format provides command stream file format detection.
package format

import (
	"bufio"
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported command stream encoding.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// JSON indicates a single JSON array of command objects.
	JSON
	// JSONLines indicates one command object per line.
	JSONLines
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case JSON:
		return "JSON"
	case JSONLines:
		return "JSONLines"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case JSON:
		return ".json"
	case JSONLines:
		return ".jsonl"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return JSON
	case ".jsonl", ".ndjson":
		return JSONLines
	default:
		return Unknown
	}
}

// DetectFromMagic checks the first non-whitespace byte to determine format.
// An array opener means JSON, an object opener means JSON lines.
func DetectFromMagic(data []byte) Format {
	data = bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(data) == 0 {
		return Unknown
	}

	switch data[0] {
	case '[':
		return JSON
	case '{':
		return JSONLines
	default:
		return Unknown
	}
}

// DetectFromReader peeks at the start of r without consuming it.
// The returned reader must be used in place of r.
func DetectFromReader(r io.Reader) (Format, *bufio.Reader) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	// Peek grows until a non-whitespace byte shows up or the buffer fills.
	for n := 64; n <= br.Size(); n *= 2 {
		data, err := br.Peek(n)
		if f := DetectFromMagic(data); f != Unknown {
			return f, br
		}
		if err != nil || len(bytes.TrimLeft(data, " \t\r\n\ufeff")) > 0 {
			break
		}
	}
	return Unknown, br
}
