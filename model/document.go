package model

import (
	"sort"
	"strings"
)

// DefaultMargin is the RTF default page margin in twips (1 inch).
const DefaultMargin = 1440

// Default page size in twips (US Letter).
const (
	DefaultPaperWidth  = 12240
	DefaultPaperHeight = 15840
)

// Document represents a complete interpreted RTF document
type Document struct {
	// Style holds the properties shared by every paragraph. Properties the
	// paragraphs disagree on keep the value set at document level.
	Style      Style  `json:"style" yaml:"style"`
	Font       *Font  `json:"font,omitempty" yaml:"font,omitempty"`
	Foreground *Color `json:"foreground,omitempty" yaml:"foreground,omitempty"`
	Background *Color `json:"background,omitempty" yaml:"background,omitempty"`

	Paragraphs []*Paragraph `json:"paragraphs" yaml:"paragraphs"`

	Fonts  map[int]*Font `json:"fonts" yaml:"fonts"`
	Colors map[int]Color `json:"colors" yaml:"colors"`

	// Page setup (twips)
	MarginLeft   int `json:"marginLeft" yaml:"marginLeft"`
	MarginRight  int `json:"marginRight" yaml:"marginRight"`
	MarginTop    int `json:"marginTop" yaml:"marginTop"`
	MarginBottom int `json:"marginBottom" yaml:"marginBottom"`
	PaperWidth   int `json:"paperWidth" yaml:"paperWidth"`
	PaperHeight  int `json:"paperHeight" yaml:"paperHeight"`

	// DefaultFont is the font index declared by \deff
	DefaultFont int `json:"defaultFont" yaml:"defaultFont"`
}

// NewDocument creates a new empty document with RTF defaults
func NewDocument() *Document {
	return &Document{
		Style:        DefaultStyle(),
		Paragraphs:   make([]*Paragraph, 0),
		Fonts:        make(map[int]*Font),
		Colors:       make(map[int]Color),
		MarginLeft:   DefaultMargin,
		MarginRight:  DefaultMargin,
		MarginTop:    DefaultMargin,
		MarginBottom: DefaultMargin,
		PaperWidth:   DefaultPaperWidth,
		PaperHeight:  DefaultPaperHeight,
	}
}

// GetFont returns the font table entry for index, or nil
func (d *Document) GetFont(index int) *Font {
	return d.Fonts[index]
}

// GetColor returns a copy of the color table entry for index, or nil
func (d *Document) GetColor(index int) *Color {
	if index == NoColor {
		return nil
	}
	c, ok := d.Colors[index]
	if !ok {
		return nil
	}
	return &c
}

// ParagraphCount returns the total number of paragraphs
func (d *Document) ParagraphCount() int {
	return len(d.Paragraphs)
}

// ExtractText returns all paragraph text, one paragraph per line
func (d *Document) ExtractText() string {
	var sb strings.Builder
	for _, p := range d.Paragraphs {
		sb.WriteString(p.GetText())
		sb.WriteString("\n")
	}
	return sb.String()
}

// FontIndexes returns the font table indexes in ascending order
func (d *Document) FontIndexes() []int {
	indexes := make([]int, 0, len(d.Fonts))
	for i := range d.Fonts {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)
	return indexes
}
