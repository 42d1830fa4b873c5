// Package resolver hoists style properties from children to parents.
//
// RTF gives every run of text a complete style. Renderers want the opposite:
// a paragraph default plus the runs that differ from it, and a document
// default plus the paragraphs that differ from it. The resolver computes
// those defaults.
//
// # Paragraph Scope
//
// For a paragraph with at least one span:
//
//	r := resolver.NewStyleResolver(doc)
//	r.ResolveParagraph(p)
//
// The first span's font and color indices are looked up in the tables and
// stored on the paragraph, then every property on which all spans agree is
// copied into the paragraph style. Empty paragraphs are left as they are.
//
// # Document Scope
//
//	r.ResolveDocument(doc)
//
// The same comparison runs across the document's paragraphs.
//
// Both passes are idempotent: running them again changes nothing. Spans are
// never modified.
package resolver
