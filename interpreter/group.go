package interpreter

import (
	"fmt"
	"strings"

	"github.com/carlblock/rtf-parser/model"
	"github.com/carlblock/rtf-parser/resolver"
)

// groupKind selects how a group accumulates content
type groupKind int

const (
	plainGroup groupKind = iota
	documentGroup
	fontTableGroup
	colorTableGroup
)

func (k groupKind) String() string {
	switch k {
	case documentGroup:
		return "document"
	case fontTableGroup:
		return "fonttbl"
	case colorTableGroup:
		return "colortbl"
	default:
		return "group"
	}
}

// group is one open RTF group. Fields below the common block are only used
// by the matching kind.
type group struct {
	kind      groupKind
	style     model.Style
	content   []model.Node
	ignorable bool
	charset   string // empty inherits from the enclosing group
	declared  string // first control word seen in the group

	// Tables harvested from closed font/color tables, passed up on close
	// until they reach the document.
	fonts  map[int]*model.Font
	colors map[int]model.Color

	// documentGroup
	doc      *model.Document
	resolver *resolver.StyleResolver

	// fontTableGroup
	fontEntries map[int]*model.Font
	currentFont *model.Font

	// colorTableGroup
	colorEntries     []model.Color
	red, green, blue int
}

func newGroup(style model.Style, charset string) *group {
	return &group{
		kind:    plainGroup,
		style:   style,
		charset: charset,
	}
}

func newDocumentGroup(doc *model.Document, charset string) *group {
	return &group{
		kind:     documentGroup,
		style:    doc.Style,
		charset:  charset,
		doc:      doc,
		resolver: resolver.NewStyleResolver(doc),
	}
}

func newFontTable(style model.Style, charset string) *group {
	return &group{
		kind:        fontTableGroup,
		style:       style,
		charset:     charset,
		declared:    "fonttbl",
		fontEntries: make(map[int]*model.Font),
	}
}

func newColorTable(style model.Style, charset string) *group {
	return &group{
		kind:         colorTableGroup,
		style:        style,
		charset:      charset,
		declared:     "colortbl",
		colorEntries: make([]model.Color, 0),
	}
}

// addContent appends a node according to the group kind. The only error is
// ErrColorTableContent.
func (g *group) addContent(node model.Node) error {
	switch g.kind {
	case plainGroup:
		g.content = append(g.content, node)
	case documentGroup:
		g.addDocumentContent(node)
	case fontTableGroup:
		g.addFontName(node)
	case colorTableGroup:
		return g.addColorSeparator(node)
	}
	return nil
}

// addDocumentContent pulls the spans that precede a paragraph boundary into
// the paragraph, then hoists its style. The paragraph is final after this.
func (g *group) addDocumentContent(node model.Node) {
	p, ok := node.(*model.Paragraph)
	if !ok {
		g.content = append(g.content, node)
		return
	}

	i := len(g.content)
	for i > 0 && g.content[i-1].Type() != model.NodeTypeParagraph {
		i--
	}

	leading := make([]*model.Span, 0, len(g.content)-i+len(p.Spans))
	for _, n := range g.content[i:] {
		if span, ok := n.(*model.Span); ok {
			leading = append(leading, span)
		}
	}
	p.Spans = append(leading, p.Spans...)

	g.content = append(g.content[:i], p)
	g.resolver.ResolveParagraph(p)
}

// addFontName appends span text to the current font name, dropping the
// entry terminator.
func (g *group) addFontName(node model.Node) {
	span, ok := node.(*model.Span)
	if !ok || g.currentFont == nil {
		return
	}
	g.currentFont.Name += strings.TrimSuffix(span.Text, ";")
}

// addColorSeparator completes one color per ";".
func (g *group) addColorSeparator(node model.Node) error {
	span, ok := node.(*model.Span)
	if !ok {
		return nil
	}
	if strings.Trim(span.Text, ";") != "" {
		return fmt.Errorf("%w: %q", ErrColorTableContent, span.Text)
	}
	for range strings.Count(span.Text, ";") {
		g.colorEntries = append(g.colorEntries, model.Color{Red: g.red, Green: g.green, Blue: g.blue})
		g.red, g.green, g.blue = 0, 0, 0
	}
	return nil
}

// startFont begins font table entry num and makes it current
func (g *group) startFont(num int) {
	font := model.NewFont()
	g.fontEntries[num] = font
	g.currentFont = font
}

// mergeFonts copies font entries into the document, or holds them on a
// plain group until it closes.
func (g *group) mergeFonts(fonts map[int]*model.Font) {
	if len(fonts) == 0 {
		return
	}
	if g.kind == documentGroup {
		for i, f := range fonts {
			g.doc.Fonts[i] = f
		}
		return
	}
	if g.fonts == nil {
		g.fonts = make(map[int]*model.Font, len(fonts))
	}
	for i, f := range fonts {
		g.fonts[i] = f
	}
}

// mergeColors copies color entries into the document, or holds them on a
// plain group until it closes.
func (g *group) mergeColors(colors map[int]model.Color) {
	if len(colors) == 0 {
		return
	}
	target := g.colors
	if g.kind == documentGroup {
		target = g.doc.Colors
	} else if target == nil {
		target = make(map[int]model.Color, len(colors))
		g.colors = target
	}
	for i, c := range colors {
		target[i] = c
	}
}

// colorTable returns the completed entries keyed by position
func (g *group) colorTable() map[int]model.Color {
	table := make(map[int]model.Color, len(g.colorEntries))
	for i, c := range g.colorEntries {
		table[i] = c
	}
	return table
}

// resetStyle replaces the style with the document defaults (\pard)
func (g *group) resetStyle(defaults model.Style) {
	g.style = defaults
}

// hasTrailingSpans reports whether content ends with spans that no
// paragraph boundary has claimed yet.
func (g *group) hasTrailingSpans() bool {
	return len(g.content) > 0 && g.content[len(g.content)-1].Type() != model.NodeTypeParagraph
}
