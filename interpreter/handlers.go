package interpreter

import (
	"fmt"
	"unicode/utf16"

	"github.com/carlblock/rtf-parser/charset"
	"github.com/carlblock/rtf-parser/command"
	"github.com/carlblock/rtf-parser/model"
)

// controlHandler applies one control word to the interpreter state
type controlHandler func(in *Interpreter, cmd command.Command) error

// controlHandlers maps control word names to their handlers. Words not
// listed here are reported as unsupported.
var controlHandlers = map[string]controlHandler{
	// Destinations
	"rtf":      handleRTF,
	"fonttbl":  handleFontTable,
	"colortbl": handleColorTable,

	// Paragraph formatting
	"par":  handlePar,
	"pard": handlePard,
	"qc":   setAlign(model.AlignCenter),
	"qj":   setAlign(model.AlignJustify),
	"ql":   setAlign(model.AlignLeft),
	"qr":   setAlign(model.AlignRight),
	"fi":   setIndent(func(s *model.Style, v int) { s.FirstLineIndent = v }, 1),
	"cufi": setIndent(func(s *model.Style, v int) { s.FirstLineIndent = v }, 100),
	"li":   setIndent(func(s *model.Style, v int) { s.Indent = v }, 1),
	"lin":  setIndent(func(s *model.Style, v int) { s.Indent = v }, 1),
	"culi": setIndent(func(s *model.Style, v int) { s.Indent = v }, 100),
	"ri":   setIndent(func(s *model.Style, v int) { s.RightIndent = v }, 1),
	"rin":  setIndent(func(s *model.Style, v int) { s.RightIndent = v }, 1),
	"curi": setIndent(func(s *model.Style, v int) { s.RightIndent = v }, 100),

	// Character formatting
	"plain":      handlePlain,
	"b":          handleBold,
	"i":          handleItalic,
	"strike":     setFlag(func(s *model.Style, on bool) { s.Strikethrough = on }),
	"ul":         setFlag(func(s *model.Style, on bool) { s.Underline = on }),
	"ulnone":     handleUnderlineNone,
	"super":      setVAlign(model.VAlignSuper),
	"sub":        setVAlign(model.VAlignSub),
	"nosupersub": setVAlign(model.VAlignNormal),
	"rtlch":      setDirection(model.DirectionRTL),
	"ltrch":      setDirection(model.DirectionLTR),
	"fs":         handleFontSize,
	"cf":         handleForeground,
	"cb":         handleBackground,
	"f":          handleFont,

	// Character sets
	"ansi":     setCharset(charset.ASCII),
	"mac":      setCharset(charset.MacRoman),
	"pc":       setCharset(charset.CP437),
	"pca":      setCharset(charset.CP850),
	"ansicpg":  handleCodepage,
	"fcharset": handleFontCharset,

	// Font table entries
	"fnil":    setFamily(model.FamilyNil),
	"froman":  setFamily(model.FamilyRoman),
	"fswiss":  setFamily(model.FamilySwiss),
	"fmodern": setFamily(model.FamilyModern),
	"fscript": setFamily(model.FamilyScript),
	"fdecor":  setFamily(model.FamilyDecor),
	"ftech":   setFamily(model.FamilyTech),
	"fbidi":   setFamily(model.FamilyBidi),
	"fprq":    handlePitch,

	// Color table entries
	"red":   setChannel(func(g *group, v int) { g.red = v }),
	"green": setChannel(func(g *group, v int) { g.green = v }),
	"blue":  setChannel(func(g *group, v int) { g.blue = v }),

	// Document settings
	"margl":  setDocument(func(d *model.Document, v int) { d.MarginLeft = v }),
	"margr":  setDocument(func(d *model.Document, v int) { d.MarginRight = v }),
	"margt":  setDocument(func(d *model.Document, v int) { d.MarginTop = v }),
	"margb":  setDocument(func(d *model.Document, v int) { d.MarginBottom = v }),
	"paperw": setDocument(func(d *model.Document, v int) { d.PaperWidth = v }),
	"paperh": setDocument(func(d *model.Document, v int) { d.PaperHeight = v }),
	"deff":   handleDefaultFont,

	// Special characters
	"u":         handleUnicode,
	"tab":       emit("\u00a0"), // tab stops are not modeled
	"line":      emit("\n"),
	"emdash":    emit("—"),
	"endash":    emit("–"),
	"emspace":   emit("\u2003"),
	"enspace":   emit("\u2002"),
	"bullet":    emit("•"),
	"lquote":    emit("‘"),
	"rquote":    emit("’"),
	"ldblquote": emit("“"),
	"rdblquote": emit("”"),

	// Destinations whose content is dropped
	"stylesheet":         handleIgnorable,
	"info":               handleIgnorable,
	"mmathPr":            handleIgnorable,
	"mathPr":             handleIgnorable,
	"pict":               handleIgnorable,
	"object":             handleIgnorable,
	"header":             handleIgnorable,
	"headerl":            handleIgnorable,
	"headerr":            handleIgnorable,
	"headerf":            handleIgnorable,
	"footer":             handleIgnorable,
	"footerl":            handleIgnorable,
	"footerr":            handleIgnorable,
	"footerf":            handleIgnorable,
	"listtable":          handleIgnorable,
	"listoverridetable":  handleIgnorable,
	"rsidtbl":            handleIgnorable,
	"generator":          handleIgnorable,
	"themedata":          handleIgnorable,
	"colorschememapping": handleIgnorable,
	"latentstyles":       handleIgnorable,
	"datastore":          handleIgnorable,
	"xmlnstbl":           handleIgnorable,

	// Accepted without effect
	"uc":          handleNothing,
	"lang":        handleNothing,
	"langfe":      handleNothing,
	"langnp":      handleNothing,
	"deflang":     handleNothing,
	"deflangfe":   handleNothing,
	"viewkind":    handleNothing,
	"widowctrl":   handleNothing,
	"nowidctlpar": handleNothing,
	"sa":          handleNothing,
	"sb":          handleNothing,
	"sl":          handleNothing,
	"slmult":      handleNothing,
}

// param returns the control word parameter, or def when none was given
func param(cmd command.Command, def int) int {
	if cmd.HasParam {
		return cmd.Param
	}
	return def
}

// toggle reports whether a flag word turns its property on: a missing
// parameter or any non-zero value does.
func toggle(cmd command.Command) bool {
	return !cmd.HasParam || cmd.Param != 0
}

func handleRTF(in *Interpreter, _ command.Command) error {
	in.replaceCurrent(in.root)
	return nil
}

func handleFontTable(in *Interpreter, _ command.Command) error {
	g := in.current()
	if g.kind == documentGroup {
		return nil
	}
	in.replaceCurrent(newFontTable(g.style, g.charset))
	return nil
}

func handleColorTable(in *Interpreter, _ command.Command) error {
	g := in.current()
	if g.kind == documentGroup {
		return nil
	}
	in.replaceCurrent(newColorTable(g.style, g.charset))
	return nil
}

func handleIgnorable(in *Interpreter, _ command.Command) error {
	if g := in.current(); g.kind != documentGroup {
		g.ignorable = true
	}
	return nil
}

func handleNothing(*Interpreter, command.Command) error {
	return nil
}

func handlePar(in *Interpreter, _ command.Command) error {
	return in.endParagraph()
}

func handlePard(in *Interpreter, _ command.Command) error {
	in.current().resetStyle(in.defaultStyle())
	in.override = spanOverride{}
	return nil
}

func handlePlain(in *Interpreter, _ command.Command) error {
	in.current().style.ResetCharacter()
	in.override = spanOverride{}
	return nil
}

func handleBold(in *Interpreter, cmd command.Command) error {
	on := toggle(cmd)
	in.current().style.Bold = on
	in.override.bold = overrideFlag{set: true, value: on}
	return nil
}

func handleItalic(in *Interpreter, cmd command.Command) error {
	on := toggle(cmd)
	in.current().style.Italic = on
	in.override.italic = overrideFlag{set: true, value: on}
	return nil
}

func handleUnderlineNone(in *Interpreter, _ command.Command) error {
	in.current().style.Underline = false
	return nil
}

func handleFontSize(in *Interpreter, cmd command.Command) error {
	in.current().style.FontSize = param(cmd, model.DefaultFontSize)
	return nil
}

func handleForeground(in *Interpreter, cmd command.Command) error {
	in.current().style.Foreground = param(cmd, 0)
	return nil
}

func handleBackground(in *Interpreter, cmd command.Command) error {
	in.current().style.Background = param(cmd, 0)
	return nil
}

// handleFont starts a font table entry inside a font table, and selects a
// font everywhere else.
func handleFont(in *Interpreter, cmd command.Command) error {
	num := param(cmd, 0)
	if ft := in.fontTable(); ft != nil {
		ft.startFont(num)
		return nil
	}
	in.current().style.Font = num
	return nil
}

func handleCodepage(in *Interpreter, cmd command.Command) error {
	code := param(cmd, 0)
	name, ok := charset.Codepage(code)
	if !ok {
		in.warn(Warning{Kind: WarningCharset, Message: fmt.Sprintf("codepage %d is not available", code)})
		return nil
	}
	in.current().charset = name
	return nil
}

func handleFontCharset(in *Interpreter, cmd command.Command) error {
	font := in.currentFont()
	if font == nil {
		return nil
	}

	code := param(cmd, 0)
	if code == 1 {
		font.Charset = in.groupCharset()
		return nil
	}
	name, ok := charset.FromCode(code)
	if !ok {
		in.warn(Warning{Kind: WarningCharset, Message: fmt.Sprintf("charset %d is not available", code)})
		return nil
	}
	font.Charset = name
	return nil
}

func handlePitch(in *Interpreter, cmd command.Command) error {
	if font := in.currentFont(); font != nil {
		font.Pitch = param(cmd, 0)
	}
	return nil
}

func handleDefaultFont(in *Interpreter, cmd command.Command) error {
	num := param(cmd, 0)
	in.doc.DefaultFont = num
	in.root.style.Font = num
	return nil
}

// handleUnicode emits one UTF-16 code unit. Surrogate halves cannot be
// represented on their own and come out as U+FFFD.
func handleUnicode(in *Interpreter, cmd command.Command) error {
	unit := uint16(int16(param(cmd, 0)))
	runes := utf16.Decode([]uint16{unit})
	return in.emitText(string(runes))
}

func setAlign(a model.Alignment) controlHandler {
	return func(in *Interpreter, _ command.Command) error {
		in.current().style.Align = a
		return nil
	}
}

func setVAlign(v model.VerticalAlign) controlHandler {
	return func(in *Interpreter, _ command.Command) error {
		in.current().style.VAlign = v
		return nil
	}
}

func setDirection(d model.Direction) controlHandler {
	return func(in *Interpreter, _ command.Command) error {
		in.current().style.Direction = d
		return nil
	}
}

func setIndent(set func(*model.Style, int), scale int) controlHandler {
	return func(in *Interpreter, cmd command.Command) error {
		set(&in.current().style, param(cmd, 0)*scale)
		return nil
	}
}

func setFlag(set func(*model.Style, bool)) controlHandler {
	return func(in *Interpreter, cmd command.Command) error {
		set(&in.current().style, toggle(cmd))
		return nil
	}
}

func setCharset(name string) controlHandler {
	return func(in *Interpreter, _ command.Command) error {
		in.current().charset = name
		return nil
	}
}

func setFamily(family model.FontFamily) controlHandler {
	return func(in *Interpreter, _ command.Command) error {
		if font := in.currentFont(); font != nil {
			font.Family = family
		}
		return nil
	}
}

// setChannel accumulates one RGB component; outside a color table it does nothing
func setChannel(set func(*group, int)) controlHandler {
	return func(in *Interpreter, cmd command.Command) error {
		if g := in.current(); g.kind == colorTableGroup {
			set(g, param(cmd, 0))
		}
		return nil
	}
}

// setDocument applies a document-level setting at any nesting depth
func setDocument(set func(*model.Document, int)) controlHandler {
	return func(in *Interpreter, cmd command.Command) error {
		set(in.doc, param(cmd, 0))
		return nil
	}
}

func emit(text string) controlHandler {
	return func(in *Interpreter, _ command.Command) error {
		return in.emitText(text)
	}
}
