package model

import "strings"

// NodeType represents the type of a content node
type NodeType int

const (
	NodeTypeUnknown NodeType = iota
	NodeTypeParagraph
	NodeTypeSpan
)

func (nt NodeType) String() string {
	switch nt {
	case NodeTypeParagraph:
		return "Paragraph"
	case NodeTypeSpan:
		return "Span"
	default:
		return "Unknown"
	}
}

// Node is the interface for content held by groups and the document.
// The concrete types are *Paragraph and *Span.
type Node interface {
	Type() NodeType
	GetText() string
}

// Span is a run of text with the full style in effect when it was created.
// Spans are immutable once created.
type Span struct {
	Text  string `json:"text" yaml:"text"`
	Style Style  `json:"style" yaml:"style"`
}

// NewSpan creates a span with a snapshot of style
func NewSpan(text string, style Style) *Span {
	return &Span{Text: text, Style: style}
}

func (s *Span) Type() NodeType  { return NodeTypeSpan }
func (s *Span) GetText() string { return s.Text }

// Paragraph is an ordered list of spans plus the style hoisted from them.
// Font, Foreground and Background are the table entries resolved from the
// first span's indices; they are nil when the paragraph is empty or the
// index is not present in the document tables.
type Paragraph struct {
	Style      Style   `json:"style" yaml:"style"`
	Font       *Font   `json:"font,omitempty" yaml:"font,omitempty"`
	Foreground *Color  `json:"foreground,omitempty" yaml:"foreground,omitempty"`
	Background *Color  `json:"background,omitempty" yaml:"background,omitempty"`
	Spans      []*Span `json:"spans" yaml:"spans"`
}

// NewParagraph creates an empty paragraph whose style starts as a snapshot of style
func NewParagraph(style Style) *Paragraph {
	return &Paragraph{Style: style, Spans: make([]*Span, 0)}
}

func (p *Paragraph) Type() NodeType { return NodeTypeParagraph }

// GetText returns the concatenated span text
func (p *Paragraph) GetText() string {
	var sb strings.Builder
	for _, span := range p.Spans {
		sb.WriteString(span.Text)
	}
	return sb.String()
}

// IsEmpty returns true if the paragraph holds no spans (a blank line)
func (p *Paragraph) IsEmpty() bool {
	return len(p.Spans) == 0
}
