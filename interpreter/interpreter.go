package interpreter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/carlblock/rtf-parser/charset"
	"github.com/carlblock/rtf-parser/command"
	"github.com/carlblock/rtf-parser/model"
)

// overrideFlag is a bold/italic value set by the last \b or \i
type overrideFlag struct {
	set   bool
	value bool
}

// spanOverride carries \b and \i across to the text commands that follow.
type spanOverride struct {
	bold   overrideFlag
	italic overrideFlag
}

func (o spanOverride) apply(s model.Style) model.Style {
	if o.bold.set {
		s.Bold = o.bold.value
	}
	if o.italic.set {
		s.Italic = o.italic.value
	}
	return s
}

// Interpreter turns a command stream into a model.Document.
// It is not safe for concurrent use; use one Interpreter per document.
type Interpreter struct {
	doc   *model.Document
	root  *group
	stack []*group

	hex      []byte
	override spanOverride

	warnings []Warning
	seen     map[string]bool

	logger         *slog.Logger
	defaultCharset string

	err      error // fatal, sticky
	finished bool
}

// Option configures the interpreter
type Option func(*Interpreter)

// WithLogger sets the logger used for diagnostics (default: discard)
func WithLogger(logger *slog.Logger) Option {
	return func(in *Interpreter) {
		if logger != nil {
			in.logger = logger
		}
	}
}

// WithDefaultCharset sets the document charset used until the stream
// declares one (default: charset.ASCII)
func WithDefaultCharset(name string) Option {
	return func(in *Interpreter) {
		if name != "" {
			in.defaultCharset = name
		}
	}
}

// New creates an interpreter for a single document
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		doc:            model.NewDocument(),
		seen:           make(map[string]bool),
		logger:         slog.New(slog.DiscardHandler),
		defaultCharset: charset.ASCII,
	}

	for _, opt := range opts {
		opt(in)
	}

	in.root = newDocumentGroup(in.doc, in.defaultCharset)
	return in
}

// Interpret runs cmds through a new interpreter and returns the document
// and any warnings.
func Interpret(cmds []command.Command, opts ...Option) (*model.Document, []Warning, error) {
	in := New(opts...)
	doc, err := in.Run(context.Background(), cmds)
	return doc, in.Warnings(), err
}

// Run processes cmds in order and finishes the document. It stops early if
// ctx is cancelled.
func (in *Interpreter) Run(ctx context.Context, cmds []command.Command) (*model.Document, error) {
	for _, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := in.Process(cmd); err != nil {
			return nil, err
		}
	}
	return in.Finish()
}

// Depth returns the number of open groups
func (in *Interpreter) Depth() int {
	return len(in.stack)
}

// Warnings returns the recoverable problems recorded so far, in order
func (in *Interpreter) Warnings() []Warning {
	return append([]Warning(nil), in.warnings...)
}

// Process handles one command. It returns an error only for the fatal
// color table violation, which also makes every later call fail.
func (in *Interpreter) Process(cmd command.Command) error {
	if in.err != nil {
		return in.err
	}
	if in.finished {
		return ErrFinished
	}

	if err := in.process(cmd); err != nil {
		in.err = err
		in.logger.Error("interpretation aborted", "command", cmd.String(), "error", err)
		return err
	}
	return nil
}

func (in *Interpreter) process(cmd command.Command) error {
	if cmd.Kind == command.KindHexByte {
		// Decoded at the next flush so multi-byte characters stay whole.
		in.hex = append(in.hex, cmd.Byte)
		return nil
	}

	if err := in.flushHex(); err != nil {
		return err
	}

	switch cmd.Kind {
	case command.KindGroupStart:
		in.startGroup()
	case command.KindGroupEnd:
		return in.endGroup()
	case command.KindIgnorable:
		if g := in.current(); g.kind != documentGroup {
			g.ignorable = true
		}
	case command.KindEndParagraph:
		return in.endParagraph()
	case command.KindText:
		style := in.textStyle()
		if cmd.Style != nil {
			style = *cmd.Style
		}
		return in.current().addContent(model.NewSpan(cmd.Value, style))
	case command.KindControlWord:
		return in.controlWord(cmd)
	case command.KindError:
		in.warn(Warning{Kind: WarningSource, Message: cmd.Message, Row: cmd.Row, Col: cmd.Col})
	default:
		in.logger.Debug("ignoring command", "kind", cmd.Kind.String())
	}
	return nil
}

// Finish closes any groups left open, claims trailing text into a final
// paragraph and hoists the document style. Calling it again returns the
// same document.
func (in *Interpreter) Finish() (*model.Document, error) {
	if in.err != nil {
		return nil, in.err
	}
	if in.finished {
		return in.doc, nil
	}

	if err := in.flushHex(); err != nil {
		in.err = err
		return nil, err
	}

	if open := len(in.stack); open > 0 {
		in.logger.Debug("closing unterminated groups", "count", open)
	}
	for len(in.stack) > 0 {
		if err := in.endGroup(); err != nil {
			in.err = err
			return nil, err
		}
	}

	if in.root.hasTrailingSpans() {
		in.root.addContent(model.NewParagraph(in.root.style))
	}

	in.doc.Paragraphs = in.doc.Paragraphs[:0]
	for _, node := range in.root.content {
		if p, ok := node.(*model.Paragraph); ok {
			in.doc.Paragraphs = append(in.doc.Paragraphs, p)
		}
	}
	// Formatting with no text to carry it does not reach the document
	if len(in.doc.Paragraphs) == 0 {
		in.doc.Style = in.defaultStyle()
	} else {
		in.doc.Style = in.root.style
	}
	in.root.resolver.ResolveDocument(in.doc)

	in.finished = true
	in.logger.Debug("document finished",
		"paragraphs", len(in.doc.Paragraphs),
		"fonts", len(in.doc.Fonts),
		"colors", len(in.doc.Colors),
		"warnings", len(in.warnings),
	)
	return in.doc, nil
}

// current returns the innermost open group, or the document when none is open
func (in *Interpreter) current() *group {
	if len(in.stack) == 0 {
		return in.root
	}
	return in.stack[len(in.stack)-1]
}

// replaceCurrent swaps the innermost open group. With no group open it is a
// no-op: the document cannot be replaced.
func (in *Interpreter) replaceCurrent(g *group) {
	if len(in.stack) == 0 {
		return
	}
	in.stack[len(in.stack)-1] = g
}

func (in *Interpreter) startGroup() {
	parent := in.current()
	in.stack = append(in.stack, newGroup(parent.style, ""))
}

// endGroup pops the innermost group and hands its content or tables to the
// group that becomes current. A close with nothing open is ignored.
func (in *Interpreter) endGroup() error {
	if len(in.stack) == 0 {
		in.logger.Debug("ignoring unmatched group end")
		return nil
	}

	g := in.stack[len(in.stack)-1]
	in.stack = in.stack[:len(in.stack)-1]
	in.override = spanOverride{}
	target := in.current()

	switch g.kind {
	case fontTableGroup:
		target.mergeFonts(g.fontEntries)
	case colorTableGroup:
		target.mergeColors(g.colorTable())
	case documentGroup:
		// The document is never merged into anything.
		return nil
	case plainGroup:
		if g.ignorable {
			return nil
		}
		for _, node := range g.content {
			if err := target.addContent(node); err != nil {
				return err
			}
		}
	}

	target.mergeFonts(g.fonts)
	target.mergeColors(g.colors)
	return nil
}

func (in *Interpreter) endParagraph() error {
	return in.current().addContent(model.NewParagraph(in.current().style))
}

// controlWord records the group's declared type and runs the handler
func (in *Interpreter) controlWord(cmd command.Command) error {
	g := in.current()
	if g.declared == "" && g.kind != documentGroup {
		g.declared = cmd.Name
	}

	handler, ok := controlHandlers[cmd.Name]
	if !ok {
		if !g.ignorable {
			in.warnOnce(Warning{Kind: WarningUnsupported, Message: fmt.Sprintf("unsupported control word \\%s", cmd.Name)})
			in.logger.Debug("unsupported control word", "word", cmd.Name, "group", g.declared, "depth", len(in.stack))
		}
		return nil
	}
	return handler(in, cmd)
}

// textStyle is the style given to spans created from text and escapes
func (in *Interpreter) textStyle() model.Style {
	return in.override.apply(in.current().style)
}

// emitText appends a span with the current text style
func (in *Interpreter) emitText(text string) error {
	return in.current().addContent(model.NewSpan(text, in.textStyle()))
}

// flushHex decodes buffered hex bytes with the effective charset
func (in *Interpreter) flushHex() error {
	if len(in.hex) == 0 {
		return nil
	}
	b := in.hex
	in.hex = nil

	name := in.effectiveCharset()
	text, err := charset.Decode(b, name)
	if err != nil {
		in.warnOnce(Warning{Kind: WarningCharset, Message: err.Error()})
		text = charset.Latin1(b)
	}
	return in.emitText(text)
}

// effectiveCharset returns the encoding for hex bytes. A charset declared
// on the font wins over the group codepage: the entry being defined inside
// the font table, the selected font everywhere else.
func (in *Interpreter) effectiveCharset() string {
	font := in.currentFont()
	if in.fontTable() == nil {
		font = in.doc.GetFont(in.current().style.Font)
	}
	if font != nil && font.Charset != "" {
		if _, ok := charset.Lookup(font.Charset); ok {
			return font.Charset
		}
	}
	return in.groupCharset()
}

// groupCharset resolves the charset declared on the innermost group that has one
func (in *Interpreter) groupCharset() string {
	for i := len(in.stack) - 1; i >= 0; i-- {
		if cs := in.stack[i].charset; cs != "" {
			return cs
		}
	}
	if in.root.charset != "" {
		return in.root.charset
	}
	return in.defaultCharset
}

// fontTable returns the innermost enclosing font table, or nil
func (in *Interpreter) fontTable() *group {
	for i := len(in.stack) - 1; i >= 0; i-- {
		if in.stack[i].kind == fontTableGroup {
			return in.stack[i]
		}
	}
	return nil
}

// currentFont returns the font table entry being defined, or nil
func (in *Interpreter) currentFont() *model.Font {
	if ft := in.fontTable(); ft != nil {
		return ft.currentFont
	}
	return nil
}

// defaultStyle is the document default style used by \pard
func (in *Interpreter) defaultStyle() model.Style {
	s := model.DefaultStyle()
	s.Font = in.doc.DefaultFont
	return s
}

func (in *Interpreter) warn(w Warning) {
	in.warnings = append(in.warnings, w)
	in.logger.Debug("warning", "kind", w.Kind.String(), "message", w.Message)
}

// warnOnce records w unless an identical warning was already recorded
func (in *Interpreter) warnOnce(w Warning) {
	key := w.String()
	if in.seen[key] {
		return
	}
	in.seen[key] = true
	in.warn(w)
}
