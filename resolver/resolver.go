package resolver

import (
	"github.com/carlblock/rtf-parser/model"
)

// Tables looks up font and color table entries by index.
// *model.Document implements it.
type Tables interface {
	GetFont(index int) *model.Font
	GetColor(index int) *model.Color
}

// StyleResolver hoists shared style properties to paragraphs and documents
type StyleResolver struct {
	tables Tables
}

// NewStyleResolver creates a resolver that resolves indices through tables
func NewStyleResolver(tables Tables) *StyleResolver {
	return &StyleResolver{tables: tables}
}

// ResolveParagraph hoists the properties shared by all spans into p.Style.
// Properties the spans disagree on are set to their defaults. Paragraphs
// without spans are skipped.
func (r *StyleResolver) ResolveParagraph(p *model.Paragraph) {
	if p == nil || len(p.Spans) == 0 {
		return
	}

	initial := p.Spans[0].Style
	if r.tables != nil {
		p.Font = r.tables.GetFont(initial.Font)
		p.Foreground = r.tables.GetColor(initial.Foreground)
		p.Background = r.tables.GetColor(initial.Background)
	}

	defaults := model.DefaultStyle()
	for _, prop := range model.Properties {
		if allSpansAgree(p.Spans, prop) {
			prop.Copy(&p.Style, initial)
		} else {
			prop.Copy(&p.Style, defaults)
		}
	}
}

// ResolveDocument hoists the properties shared by all paragraphs into
// doc.Style. An empty document keeps its current style.
func (r *StyleResolver) ResolveDocument(doc *model.Document) {
	if doc == nil || len(doc.Paragraphs) == 0 {
		return
	}

	initial := doc.Paragraphs[0]
	for _, prop := range model.Properties {
		if allParagraphsAgree(doc.Paragraphs, prop) {
			prop.Copy(&doc.Style, initial.Style)
		}
	}

	if agree(doc.Paragraphs, func(p *model.Paragraph) bool { return sameFont(p.Font, initial.Font) }) {
		doc.Font = initial.Font
	}
	if agree(doc.Paragraphs, func(p *model.Paragraph) bool { return sameColor(p.Foreground, initial.Foreground) }) {
		doc.Foreground = initial.Foreground
	}
	if agree(doc.Paragraphs, func(p *model.Paragraph) bool { return sameColor(p.Background, initial.Background) }) {
		doc.Background = initial.Background
	}
}

func allSpansAgree(spans []*model.Span, prop model.Property) bool {
	first := spans[0].Style
	for _, span := range spans[1:] {
		if !prop.Equal(first, span.Style) {
			return false
		}
	}
	return true
}

func allParagraphsAgree(paragraphs []*model.Paragraph, prop model.Property) bool {
	first := paragraphs[0].Style
	for _, p := range paragraphs[1:] {
		if !prop.Equal(first, p.Style) {
			return false
		}
	}
	return true
}

func agree(paragraphs []*model.Paragraph, match func(*model.Paragraph) bool) bool {
	for _, p := range paragraphs {
		if !match(p) {
			return false
		}
	}
	return true
}

func sameFont(a, b *model.Font) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameColor(a, b *model.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
