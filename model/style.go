package model

// NoColor marks a foreground or background that does not reference the color table.
const NoColor = -1

// DefaultFontSize is the RTF default font size in half points (12pt).
const DefaultFontSize = 24

// Alignment represents paragraph alignment
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// VerticalAlign represents superscript/subscript positioning
type VerticalAlign string

const (
	VAlignNormal VerticalAlign = "normal"
	VAlignSuper  VerticalAlign = "super"
	VAlignSub    VerticalAlign = "sub"
)

// Direction represents text direction
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// Style is the full set of character and paragraph properties carried by
// groups, spans, paragraphs and the document. It is a plain value: copying
// a Style snapshots it.
type Style struct {
	// Character properties
	Font          int           `json:"font" yaml:"font"`         // font table index
	FontSize      int           `json:"fontSize" yaml:"fontSize"` // half points
	Bold          bool          `json:"bold" yaml:"bold"`
	Italic        bool          `json:"italic" yaml:"italic"`
	Underline     bool          `json:"underline" yaml:"underline"`
	Strikethrough bool          `json:"strikethrough" yaml:"strikethrough"`
	Foreground    int           `json:"foreground" yaml:"foreground"` // color table index or NoColor
	Background    int           `json:"background" yaml:"background"` // color table index or NoColor
	VAlign        VerticalAlign `json:"valign" yaml:"valign"`

	// Paragraph properties (twips)
	FirstLineIndent int       `json:"firstLineIndent" yaml:"firstLineIndent"`
	Indent          int       `json:"indent" yaml:"indent"`
	RightIndent     int       `json:"rightIndent" yaml:"rightIndent"`
	Align           Alignment `json:"align" yaml:"align"`
	Direction       Direction `json:"direction" yaml:"direction"`
}

// DefaultStyle returns the built-in document defaults.
func DefaultStyle() Style {
	return Style{
		Font:       0,
		FontSize:   DefaultFontSize,
		Foreground: NoColor,
		Background: NoColor,
		VAlign:     VAlignNormal,
		Align:      AlignLeft,
		Direction:  DirectionLTR,
	}
}

// ResetCharacter restores the character properties cleared by \plain.
// Paragraph properties are left untouched.
func (s *Style) ResetCharacter() {
	def := DefaultStyle()
	s.Bold = def.Bold
	s.Italic = def.Italic
	s.Underline = def.Underline
	s.FontSize = def.FontSize
}

// Property is one member of the fixed style property set.
type Property struct {
	Name  string
	Equal func(a, b Style) bool
	Copy  func(dst *Style, src Style)
}

// Properties enumerates every style property in declaration order.
var Properties = []Property{
	{"font", func(a, b Style) bool { return a.Font == b.Font }, func(d *Style, s Style) { d.Font = s.Font }},
	{"fontSize", func(a, b Style) bool { return a.FontSize == b.FontSize }, func(d *Style, s Style) { d.FontSize = s.FontSize }},
	{"bold", func(a, b Style) bool { return a.Bold == b.Bold }, func(d *Style, s Style) { d.Bold = s.Bold }},
	{"italic", func(a, b Style) bool { return a.Italic == b.Italic }, func(d *Style, s Style) { d.Italic = s.Italic }},
	{"underline", func(a, b Style) bool { return a.Underline == b.Underline }, func(d *Style, s Style) { d.Underline = s.Underline }},
	{"strikethrough", func(a, b Style) bool { return a.Strikethrough == b.Strikethrough }, func(d *Style, s Style) { d.Strikethrough = s.Strikethrough }},
	{"foreground", func(a, b Style) bool { return a.Foreground == b.Foreground }, func(d *Style, s Style) { d.Foreground = s.Foreground }},
	{"background", func(a, b Style) bool { return a.Background == b.Background }, func(d *Style, s Style) { d.Background = s.Background }},
	{"valign", func(a, b Style) bool { return a.VAlign == b.VAlign }, func(d *Style, s Style) { d.VAlign = s.VAlign }},
	{"firstLineIndent", func(a, b Style) bool { return a.FirstLineIndent == b.FirstLineIndent }, func(d *Style, s Style) { d.FirstLineIndent = s.FirstLineIndent }},
	{"indent", func(a, b Style) bool { return a.Indent == b.Indent }, func(d *Style, s Style) { d.Indent = s.Indent }},
	{"rightIndent", func(a, b Style) bool { return a.RightIndent == b.RightIndent }, func(d *Style, s Style) { d.RightIndent = s.RightIndent }},
	{"align", func(a, b Style) bool { return a.Align == b.Align }, func(d *Style, s Style) { d.Align = s.Align }},
	{"direction", func(a, b Style) bool { return a.Direction == b.Direction }, func(d *Style, s Style) { d.Direction = s.Direction }},
}
