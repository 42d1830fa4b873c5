package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/carlblock/rtf-parser/format"
	"github.com/carlblock/rtf-parser/model"
)

// ErrInvalidCommand is returned for objects that do not describe a command
var ErrInvalidCommand = errors.New("invalid command")

// wireCommand is the JSON shape of a Command
type wireCommand struct {
	Type    string          `json:"type"`
	Value   json.RawMessage `json:"value,omitempty"`
	Style   json.RawMessage `json:"style,omitempty"`
	Name    string          `json:"name,omitempty"`
	Param   *int            `json:"param,omitempty"`
	Message string          `json:"message,omitempty"`
	Row     int             `json:"row,omitempty"`
	Col     int             `json:"col,omitempty"`
}

// MarshalJSON encodes the command in its wire form
func (c Command) MarshalJSON() ([]byte, error) {
	w := wireCommand{Type: c.Kind.String()}
	switch c.Kind {
	case KindText:
		v, err := json.Marshal(c.Value)
		if err != nil {
			return nil, err
		}
		w.Value = v
		if c.Style != nil {
			s, err := json.Marshal(c.Style)
			if err != nil {
				return nil, err
			}
			w.Style = s
		}
	case KindControlWord:
		w.Name = c.Name
		if c.HasParam {
			p := c.Param
			w.Param = &p
		}
	case KindHexByte:
		w.Value = json.RawMessage(strconv.Itoa(int(c.Byte)))
	case KindError:
		w.Message = c.Message
		w.Row = c.Row
		w.Col = c.Col
	case KindUnknown:
		return nil, fmt.Errorf("%w: unknown kind", ErrInvalidCommand)
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the wire form. A partial style is completed with
// the built-in defaults.
func (c *Command) UnmarshalJSON(data []byte) error {
	var w wireCommand
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	kind, ok := ParseKind(w.Type)
	if !ok {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidCommand, w.Type)
	}
	*c = Command{Kind: kind}

	switch kind {
	case KindText:
		if err := json.Unmarshal(w.Value, &c.Value); err != nil {
			return fmt.Errorf("%w: text value: %v", ErrInvalidCommand, err)
		}
		if len(w.Style) > 0 {
			style := model.DefaultStyle()
			if err := json.Unmarshal(w.Style, &style); err != nil {
				return fmt.Errorf("%w: text style: %v", ErrInvalidCommand, err)
			}
			c.Style = &style
		}
	case KindControlWord:
		if w.Name == "" {
			return fmt.Errorf("%w: control word without name", ErrInvalidCommand)
		}
		c.Name = w.Name
		if w.Param != nil {
			c.Param = *w.Param
			c.HasParam = true
		}
	case KindHexByte:
		b, err := parseByte(w.Value)
		if err != nil {
			return err
		}
		c.Byte = b
	case KindError:
		c.Message = w.Message
		c.Row = w.Row
		c.Col = w.Col
	}
	return nil
}

// parseByte accepts either a number (233) or a two digit hex string ("e9").
func parseByte(raw json.RawMessage) (byte, error) {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		if n < 0 || n > 0xFF {
			return 0, fmt.Errorf("%w: hex byte %d out of range", ErrInvalidCommand, n)
		}
		return byte(n), nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("%w: hex byte value %s", ErrInvalidCommand, string(raw))
	}
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: hex byte %q", ErrInvalidCommand, s)
	}
	return byte(v), nil
}

// Parser reads a stored command stream, either a JSON array or JSON lines.
type Parser struct {
	dec    *json.Decoder
	format format.Format
	opened bool
	done   bool
	count  int
}

// NewParser creates a parser reading from r. The encoding is detected from
// the first non-whitespace byte.
func NewParser(r io.Reader) *Parser {
	f, br := format.DetectFromReader(r)
	return &Parser{
		dec:    json.NewDecoder(br),
		format: f,
	}
}

// Format returns the detected stream encoding
func (p *Parser) Format() format.Format {
	return p.format
}

// Next returns the next command, or io.EOF at the end of the stream
func (p *Parser) Next() (Command, error) {
	if p.done {
		return Command{}, io.EOF
	}

	if p.format == format.JSON && !p.opened {
		if _, err := p.dec.Token(); err != nil { // consume '['
			return Command{}, fmt.Errorf("reading command array: %w", err)
		}
		p.opened = true
	}

	if p.format == format.JSON && !p.dec.More() {
		p.done = true
		if _, err := p.dec.Token(); err != nil { // consume ']'
			return Command{}, fmt.Errorf("reading command array: %w", err)
		}
		return Command{}, io.EOF
	}

	var cmd Command
	if err := p.dec.Decode(&cmd); err != nil {
		if err == io.EOF {
			p.done = true
			return Command{}, io.EOF
		}
		return Command{}, fmt.Errorf("command %d: %w", p.count+1, err)
	}
	p.count++
	return cmd, nil
}

// Parse reads all remaining commands in order
func (p *Parser) Parse() ([]Command, error) {
	cmds := make([]Command, 0)
	for {
		cmd, err := p.Next()
		if err == io.EOF {
			return cmds, nil
		}
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
}
