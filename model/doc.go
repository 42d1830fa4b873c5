// Package model provides the document representation produced by the RTF
// interpreter.
//
// These are the types handed to renderers: a [Document] holding ordered
// [Paragraph] values made of styled [Span] runs, the font and color tables,
// and page setup.
//
// # Styles
//
// Every span, paragraph and the document carry a complete [Style]. A span's
// style is the snapshot in effect when its text was seen. Paragraph and
// document styles are hoisted: a property shared by all children is copied
// up, so a renderer can emit only the differences.
//
// The style property set is fixed and enumerated by [Properties], which lets
// the resolver compare and copy properties without knowing each field.
//
// # Tables
//
// Fonts and colors are referenced from styles by index:
//
//	font := doc.GetFont(span.Style.Font)
//	color := doc.GetColor(span.Style.Foreground) // nil for NoColor
//
// Paragraphs additionally carry the entries resolved from their first span.
package model
