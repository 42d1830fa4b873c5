package command

import (
	"fmt"

	"github.com/carlblock/rtf-parser/model"
)

// Kind identifies the variant of a Command
type Kind int

const (
	KindUnknown Kind = iota
	KindGroupStart
	KindGroupEnd
	KindIgnorable
	KindEndParagraph
	KindText
	KindControlWord
	KindHexByte
	KindError
)

var kindNames = map[Kind]string{
	KindGroupStart:   "groupStart",
	KindGroupEnd:     "groupEnd",
	KindIgnorable:    "ignorable",
	KindEndParagraph: "endParagraph",
	KindText:         "text",
	KindControlWord:  "controlWord",
	KindHexByte:      "hexByte",
	KindError:        "error",
}

// String returns the wire name of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind returns the kind for a wire name
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return KindUnknown, false
}

// Command is a single primitive RTF command. Which fields are meaningful
// depends on Kind:
//
//	KindText:        Value, optional Style
//	KindControlWord: Name, Param when HasParam
//	KindHexByte:     Byte
//	KindError:       Message, Row and Col when known (0 otherwise)
type Command struct {
	Kind Kind

	Value string
	Style *model.Style

	Name     string
	Param    int
	HasParam bool

	Byte byte

	Message string
	Row     int
	Col     int
}

// GroupStart creates an open-brace command
func GroupStart() Command { return Command{Kind: KindGroupStart} }

// GroupEnd creates a close-brace command
func GroupEnd() Command { return Command{Kind: KindGroupEnd} }

// Ignorable creates a \* marker command
func Ignorable() Command { return Command{Kind: KindIgnorable} }

// EndParagraph creates a paragraph break command
func EndParagraph() Command { return Command{Kind: KindEndParagraph} }

// Text creates a literal text command
func Text(value string) Command { return Command{Kind: KindText, Value: value} }

// StyledText creates a literal text command that carries its own style
func StyledText(value string, style model.Style) Command {
	return Command{Kind: KindText, Value: value, Style: &style}
}

// Word creates a control word command. At most one parameter is used.
func Word(name string, param ...int) Command {
	cmd := Command{Kind: KindControlWord, Name: name}
	if len(param) > 0 {
		cmd.Param = param[0]
		cmd.HasParam = true
	}
	return cmd
}

// Hex creates a hex-escaped byte command (\'xx)
func Hex(b byte) Command { return Command{Kind: KindHexByte, Byte: b} }

// Error creates a tokenizer error command without a source position
func Error(message string) Command { return Command{Kind: KindError, Message: message} }

// ErrorAt creates a tokenizer error command with a source position
func ErrorAt(message string, row, col int) Command {
	return Command{Kind: KindError, Message: message, Row: row, Col: col}
}

// String returns an RTF-like rendering, for logs and test failures
func (c Command) String() string {
	switch c.Kind {
	case KindGroupStart:
		return "{"
	case KindGroupEnd:
		return "}"
	case KindIgnorable:
		return `\*`
	case KindEndParagraph:
		return `\par`
	case KindText:
		return fmt.Sprintf("%q", c.Value)
	case KindControlWord:
		if c.HasParam {
			return fmt.Sprintf(`\%s%d`, c.Name, c.Param)
		}
		return `\` + c.Name
	case KindHexByte:
		return fmt.Sprintf(`\'%02x`, c.Byte)
	case KindError:
		if c.Row > 0 {
			return fmt.Sprintf("error(%d:%d: %s)", c.Row, c.Col, c.Message)
		}
		return fmt.Sprintf("error(%s)", c.Message)
	default:
		return "unknown"
	}
}
