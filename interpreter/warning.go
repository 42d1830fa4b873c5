package interpreter

import (
	"errors"
	"fmt"
)

// ErrColorTableContent is returned when literal content other than ";"
// reaches an open color table. It means the command producer is broken and
// interpretation cannot continue.
var ErrColorTableContent = errors.New("unexpected content in color table")

// ErrFinished is returned by Process after Finish has been called.
var ErrFinished = errors.New("interpreter already finished")

// WarningKind classifies a recoverable problem
type WarningKind int

const (
	// WarningUnsupported reports a control word with no handler.
	WarningUnsupported WarningKind = iota
	// WarningCharset reports an unknown codepage or charset, or bytes that
	// could not be decoded.
	WarningCharset
	// WarningSource reports an error passed through from the tokenizer.
	WarningSource
)

func (k WarningKind) String() string {
	switch k {
	case WarningUnsupported:
		return "unsupported"
	case WarningCharset:
		return "charset"
	case WarningSource:
		return "source"
	default:
		return "unknown"
	}
}

// Warning is a recoverable problem found while interpreting. Row and Col
// are 0 when the source position is not known.
type Warning struct {
	Kind    WarningKind `json:"kind" yaml:"kind"`
	Message string      `json:"message" yaml:"message"`
	Row     int         `json:"row,omitempty" yaml:"row,omitempty"`
	Col     int         `json:"col,omitempty" yaml:"col,omitempty"`
}

func (w Warning) String() string {
	if w.Row > 0 {
		return fmt.Sprintf("%s: %d:%d: %s", w.Kind, w.Row, w.Col, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}

// MarshalText lets WarningKind encode as its name in JSON and YAML output
func (k WarningKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
