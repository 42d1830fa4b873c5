package interpreter

import (
	"strings"
	"testing"

	"github.com/carlblock/rtf-parser/charset"
	"github.com/carlblock/rtf-parser/command"
	"github.com/carlblock/rtf-parser/model"
)

func fontTable(entries ...[]command.Command) []command.Command {
	cmds := []command.Command{command.GroupStart(), command.Word("fonttbl")}
	for _, entry := range entries {
		cmds = append(cmds, command.GroupStart())
		cmds = append(cmds, entry...)
		cmds = append(cmds, command.GroupEnd())
	}
	return append(cmds, command.GroupEnd())
}

func hexBytes(b ...byte) []command.Command {
	cmds := make([]command.Command, len(b))
	for i, c := range b {
		cmds[i] = command.Hex(c)
	}
	return cmds
}

func concat(parts ...[]command.Command) []command.Command {
	var out []command.Command
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestFontTable(t *testing.T) {
	doc, warnings := run(t, rtf(fontTable(
		[]command.Command{command.Word("f", 0), command.Text("Arial;")},
		[]command.Command{command.Word("f", 1), command.Word("fmodern"), command.Word("fprq", 1), command.Text("Courier"), command.Text(" New;")},
		[]command.Command{command.Word("f", 2), command.Word("fnil"), command.Word("fcharset", 128), command.Text("MS Mincho;")},
	)...)...)

	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	tests := []struct {
		index   int
		name    string
		family  model.FontFamily
		charset string
		pitch   int
	}{
		{0, "Arial", model.FamilyRoman, "", 0},
		{1, "Courier New", model.FamilyModern, "", 1},
		{2, "MS Mincho", model.FamilyNil, "SHIFT_JIS", 0},
	}

	for _, tt := range tests {
		f := doc.GetFont(tt.index)
		if f == nil {
			t.Errorf("font %d missing", tt.index)
			continue
		}
		if f.Name != tt.name || f.Family != tt.family || f.Charset != tt.charset || f.Pitch != tt.pitch {
			t.Errorf("font %d = %+v, want %s/%s/%s/%d", tt.index, *f, tt.name, tt.family, tt.charset, tt.pitch)
		}
	}
	if doc.ParagraphCount() != 0 {
		t.Errorf("font names leaked into %d paragraphs", doc.ParagraphCount())
	}
}

func TestFontTable_EntriesWithoutGroups(t *testing.T) {
	doc, _ := run(t, rtf(
		command.GroupStart(),
		command.Word("fonttbl"),
		command.Word("f", 0),
		command.Word("fswiss"),
		command.Text("Helvetica;"),
		command.Word("f", 1),
		command.Text("Times;"),
		command.GroupEnd(),
	)...)

	if f := doc.GetFont(0); f == nil || f.Name != "Helvetica" || f.Family != model.FamilySwiss {
		t.Errorf("font 0 = %+v", f)
	}
	if f := doc.GetFont(1); f == nil || f.Name != "Times" {
		t.Errorf("font 1 = %+v", f)
	}
}

func TestFontCharsetDefault(t *testing.T) {
	doc, _ := run(t,
		command.GroupStart(),
		command.Word("rtf", 1),
		command.Word("mac"),
		command.GroupStart(),
		command.Word("fonttbl"),
		command.GroupStart(),
		command.Word("f", 0),
		command.Word("fcharset", 1),
		command.Text("Geneva;"),
		command.GroupEnd(),
		command.GroupEnd(),
		command.GroupEnd(),
	)

	if f := doc.GetFont(0); f == nil || f.Charset != charset.MacRoman {
		t.Errorf("font 0 = %+v, want charset inherited from the group", f)
	}
}

func TestFontCharsetUnknown(t *testing.T) {
	doc, warnings := run(t, rtf(fontTable(
		[]command.Command{command.Word("f", 0), command.Word("fcharset", 99), command.Text("Odd;")},
	)...)...)

	if f := doc.GetFont(0); f == nil || f.Charset != "" {
		t.Errorf("font 0 = %+v, want no charset", f)
	}
	if len(warnings) != 1 || warnings[0].Kind != WarningCharset {
		t.Errorf("warnings = %v, want one charset warning", warnings)
	}
}

func TestFontTableInNestedGroup(t *testing.T) {
	doc, _ := run(t, rtf(
		command.GroupStart(),
		command.GroupStart(),
		command.Word("fonttbl"),
		command.GroupStart(),
		command.Word("f", 4),
		command.Text("Nested;"),
		command.GroupEnd(),
		command.GroupEnd(),
		command.GroupEnd(),
	)...)

	if f := doc.GetFont(4); f == nil || f.Name != "Nested" {
		t.Errorf("font 4 = %+v, want it propagated to the document", f)
	}
}

func TestColorTable(t *testing.T) {
	tests := []struct {
		name string
		body []command.Command
		want map[int]model.Color
	}{
		{
			name: "single",
			body: []command.Command{
				command.Word("red", 255), command.Word("green", 0), command.Word("blue", 0), command.Text(";"),
			},
			want: map[int]model.Color{0: {Red: 255}},
		},
		{
			name: "auto first",
			body: []command.Command{
				command.Text(";"),
				command.Word("red", 0), command.Word("green", 128), command.Word("blue", 255), command.Text(";"),
				command.Word("red", 10), command.Text(";"),
			},
			want: map[int]model.Color{0: {}, 1: {Green: 128, Blue: 255}, 2: {Red: 10}},
		},
		{
			name: "run of separators",
			body: []command.Command{command.Text(";;")},
			want: map[int]model.Color{0: {}, 1: {}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := []command.Command{command.GroupStart(), command.Word("colortbl")}
			body = append(body, tt.body...)
			body = append(body, command.GroupEnd())

			doc, _ := run(t, rtf(body...)...)

			if len(doc.Colors) != len(tt.want) {
				t.Fatalf("colors = %v, want %v", doc.Colors, tt.want)
			}
			for i, want := range tt.want {
				if got := doc.Colors[i]; got != want {
					t.Errorf("color %d = %+v, want %+v", i, got, want)
				}
			}
		})
	}
}

func TestColorComponentsOutsideTable(t *testing.T) {
	doc, warnings := run(t, rtf(command.Word("red", 200), command.Text("x"))...)

	if len(doc.Colors) != 0 || len(warnings) != 0 {
		t.Errorf("colors = %v, warnings = %v", doc.Colors, warnings)
	}
}

func TestColorsResolveOnParagraph(t *testing.T) {
	doc, _ := run(t, rtf(
		command.GroupStart(),
		command.Word("colortbl"),
		command.Text(";"),
		command.Word("red", 255),
		command.Text(";"),
		command.Word("blue", 255),
		command.Text(";"),
		command.GroupEnd(),
		command.Word("cf", 1),
		command.Word("cb", 2),
		command.Text("colored"),
		command.Word("par"),
	)...)

	p := doc.Paragraphs[0]
	if p.Style.Foreground != 1 || p.Style.Background != 2 {
		t.Errorf("color indices = %d/%d, want 1/2", p.Style.Foreground, p.Style.Background)
	}
	if p.Foreground == nil || p.Foreground.Red != 255 {
		t.Errorf("Foreground = %v", p.Foreground)
	}
	if p.Background == nil || p.Background.Blue != 255 {
		t.Errorf("Background = %v", p.Background)
	}
}

func TestHexDecoding(t *testing.T) {
	tests := []struct {
		name     string
		cmds     []command.Command
		want     string
		warnings int
	}{
		{
			name: "ansicpg 1252",
			cmds: concat(
				[]command.Command{command.GroupStart(), command.Word("ansicpg", 1252)},
				hexBytes(0x63, 0x61, 0x66, 0xe9),
				[]command.Command{command.GroupEnd()},
			),
			want: "café",
		},
		{
			name: "ansi default",
			cmds: rtf(hexBytes(0x93, 0x68, 0x69, 0x94)...),
			want: "“hi”",
		},
		{
			name: "mac",
			cmds: concat(
				[]command.Command{command.GroupStart(), command.Word("rtf", 1), command.Word("mac")},
				hexBytes(0x8e),
				[]command.Command{command.GroupEnd()},
			),
			want: "é",
		},
		{
			name: "codepage without decoder",
			cmds: concat(
				[]command.Command{command.GroupStart(), command.Word("ansicpg", 737)},
				hexBytes(0xe9, 0xe9),
				[]command.Command{command.Text("!"), command.GroupEnd()},
				[]command.Command{command.GroupStart(), command.Word("ansicpg", 737)},
				hexBytes(0xe9),
				[]command.Command{command.GroupEnd()},
			),
			want:     "éé!é",
			warnings: 1,
		},
		{
			name: "flushed at text",
			cmds: concat(
				[]command.Command{command.GroupStart(), command.Word("ansicpg", 1251)},
				hexBytes(0xcf),
				[]command.Command{command.Text("-"), command.Hex(0xf0), command.GroupEnd()},
			),
			want: "П-р",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, warnings := run(t, tt.cmds...)

			if got := strings.TrimSuffix(doc.ExtractText(), "\n"); got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
			if len(warnings) != tt.warnings {
				t.Errorf("got %d warnings, want %d: %v", len(warnings), tt.warnings, warnings)
			}
		})
	}
}

func TestHexDecoding_FontCharsetWins(t *testing.T) {
	doc, _ := run(t, rtf(concat(
		fontTable(
			[]command.Command{command.Word("f", 0), command.Text("Arial;")},
			[]command.Command{command.Word("f", 1), command.Word("fcharset", 128), command.Text("MS Mincho;")},
		),
		[]command.Command{command.GroupStart(), command.Word("f", 1)},
		hexBytes(0x82, 0xa0),
		[]command.Command{command.GroupEnd()},
		hexBytes(0xe9),
	)...)...)

	if got := doc.ExtractText(); got != "あé\n" {
		t.Errorf("ExtractText() = %q, want %q", got, "あé\n")
	}
}

func TestHexDecoding_FontTableEntryCharset(t *testing.T) {
	doc, warnings := run(t, rtf(fontTable(
		concat(
			[]command.Command{command.Word("f", 0), command.Text("Caf")},
			hexBytes(0xe9),
			[]command.Command{command.Text(";")},
		),
		concat(
			[]command.Command{command.Word("f", 1), command.Word("fcharset", 128)},
			hexBytes(0x82, 0x6c, 0x82, 0x72),
			[]command.Command{command.Text(" Mincho;")},
		),
	)...)...)

	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	tests := []struct {
		num  int
		want string
	}{
		{0, "Café"},
		{1, "\uff2d\uff33 Mincho"},
	}
	for _, tt := range tests {
		f := doc.GetFont(tt.num)
		if f == nil {
			t.Errorf("font %d missing", tt.num)
			continue
		}
		if f.Name != tt.want {
			t.Errorf("font %d name = %q, want %q", tt.num, f.Name, tt.want)
		}
	}
}

func TestCodepageUnknown(t *testing.T) {
	doc, warnings := run(t, rtf(concat(
		[]command.Command{command.Word("ansicpg", 9999)},
		hexBytes(0xe9),
	)...)...)

	if len(warnings) != 1 || warnings[0].Kind != WarningCharset {
		t.Fatalf("warnings = %v, want one charset warning", warnings)
	}
	if !strings.Contains(warnings[0].Message, "9999") {
		t.Errorf("message = %q", warnings[0].Message)
	}
	// The previous charset stays in effect
	if doc.ExtractText() != "é\n" {
		t.Errorf("ExtractText() = %q", doc.ExtractText())
	}
}

func TestUnicode(t *testing.T) {
	tests := []struct {
		name  string
		param int
		want  string
	}{
		{"ascii", 65, "A"},
		{"negative", -32, "\uffe0"},
		{"bmp", 8364, "€"},
		{"high surrogate", -10179, "\ufffd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, _ := run(t, rtf(command.Word("u", tt.param))...)
			if got := doc.ExtractText(); got != tt.want+"\n" {
				t.Errorf("ExtractText() = %q, want %q", got, tt.want+"\n")
			}
		})
	}
}

func TestSpecialCharacters(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"tab", "\u00a0"},
		{"line", "\n"},
		{"emdash", "—"},
		{"endash", "–"},
		{"bullet", "•"},
		{"lquote", "‘"},
		{"rquote", "’"},
		{"ldblquote", "“"},
		{"rdblquote", "”"},
		{"emspace", "\u2003"},
		{"enspace", "\u2002"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			doc, warnings := run(t, rtf(command.Text("a"), command.Word(tt.word), command.Text("b"))...)
			if len(warnings) != 0 {
				t.Errorf("unexpected warnings: %v", warnings)
			}
			if got := doc.Paragraphs[0].GetText(); got != "a"+tt.want+"b" {
				t.Errorf("text = %q, want %q", got, "a"+tt.want+"b")
			}
		})
	}
}

func TestCharacterFormatting(t *testing.T) {
	tests := []struct {
		name  string
		words []command.Command
		check func(model.Style) bool
	}{
		{"bold", []command.Command{command.Word("b")}, func(s model.Style) bool { return s.Bold }},
		{"bold off", []command.Command{command.Word("b"), command.Word("b", 0)}, func(s model.Style) bool { return !s.Bold }},
		{"italic", []command.Command{command.Word("i", 1)}, func(s model.Style) bool { return s.Italic }},
		{"underline", []command.Command{command.Word("ul")}, func(s model.Style) bool { return s.Underline }},
		{"ulnone", []command.Command{command.Word("ul"), command.Word("ulnone")}, func(s model.Style) bool { return !s.Underline }},
		{"strike", []command.Command{command.Word("strike")}, func(s model.Style) bool { return s.Strikethrough }},
		{"super", []command.Command{command.Word("super")}, func(s model.Style) bool { return s.VAlign == model.VAlignSuper }},
		{"sub", []command.Command{command.Word("sub")}, func(s model.Style) bool { return s.VAlign == model.VAlignSub }},
		{"nosupersub", []command.Command{command.Word("sub"), command.Word("nosupersub")}, func(s model.Style) bool { return s.VAlign == model.VAlignNormal }},
		{"fs", []command.Command{command.Word("fs", 36)}, func(s model.Style) bool { return s.FontSize == 36 }},
		{"f", []command.Command{command.Word("f", 3)}, func(s model.Style) bool { return s.Font == 3 }},
		{"rtlch", []command.Command{command.Word("rtlch")}, func(s model.Style) bool { return s.Direction == model.DirectionRTL }},
		{"ltrch", []command.Command{command.Word("rtlch"), command.Word("ltrch")}, func(s model.Style) bool { return s.Direction == model.DirectionLTR }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := append([]command.Command{command.GroupStart()}, tt.words...)
			body = append(body, command.Text("x"), command.GroupEnd())

			doc, _ := run(t, rtf(body...)...)

			if style := doc.Paragraphs[0].Spans[0].Style; !tt.check(style) {
				t.Errorf("span style = %+v", style)
			}
		})
	}
}

func TestParagraphFormatting(t *testing.T) {
	tests := []struct {
		name  string
		words []command.Command
		check func(model.Style) bool
	}{
		{"qc", []command.Command{command.Word("qc")}, func(s model.Style) bool { return s.Align == model.AlignCenter }},
		{"qj", []command.Command{command.Word("qj")}, func(s model.Style) bool { return s.Align == model.AlignJustify }},
		{"qr", []command.Command{command.Word("qr")}, func(s model.Style) bool { return s.Align == model.AlignRight }},
		{"ql", []command.Command{command.Word("qr"), command.Word("ql")}, func(s model.Style) bool { return s.Align == model.AlignLeft }},
		{"fi", []command.Command{command.Word("fi", -360)}, func(s model.Style) bool { return s.FirstLineIndent == -360 }},
		{"cufi", []command.Command{command.Word("cufi", 2)}, func(s model.Style) bool { return s.FirstLineIndent == 200 }},
		{"li", []command.Command{command.Word("li", 720)}, func(s model.Style) bool { return s.Indent == 720 }},
		{"lin", []command.Command{command.Word("lin", 360)}, func(s model.Style) bool { return s.Indent == 360 }},
		{"culi", []command.Command{command.Word("culi", 3)}, func(s model.Style) bool { return s.Indent == 300 }},
		{"ri", []command.Command{command.Word("ri", 144)}, func(s model.Style) bool { return s.RightIndent == 144 }},
		{"rin", []command.Command{command.Word("rin", 72)}, func(s model.Style) bool { return s.RightIndent == 72 }},
		{"curi", []command.Command{command.Word("curi", 1)}, func(s model.Style) bool { return s.RightIndent == 100 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := append([]command.Command{command.GroupStart()}, tt.words...)
			body = append(body, command.Text("x"), command.Word("par"), command.GroupEnd())

			doc, _ := run(t, rtf(body...)...)

			if style := doc.Paragraphs[0].Style; !tt.check(style) {
				t.Errorf("paragraph style = %+v", style)
			}
		})
	}
}

func TestPlain(t *testing.T) {
	doc, _ := run(t, rtf(
		command.Word("qc"),
		command.Word("b"),
		command.Word("i"),
		command.Word("fs", 40),
		command.Word("plain"),
		command.Text("x"),
	)...)

	s := doc.Paragraphs[0].Spans[0].Style
	if s.Bold || s.Italic || s.FontSize != model.DefaultFontSize {
		t.Errorf("character properties not reset: %+v", s)
	}
	if s.Align != model.AlignCenter {
		t.Errorf("Align = %q, want center kept by \\plain", s.Align)
	}
}

func TestPard(t *testing.T) {
	doc, _ := run(t, rtf(
		command.Word("deff", 2),
		command.Word("qc"),
		command.Word("li", 720),
		command.Word("b"),
		command.Word("f", 5),
		command.Word("pard"),
		command.Text("x"),
	)...)

	s := doc.Paragraphs[0].Spans[0].Style
	want := model.DefaultStyle()
	want.Font = 2
	if s != want {
		t.Errorf("style after \\pard = %+v, want %+v", s, want)
	}
}

func TestSpanOverride(t *testing.T) {
	doc, _ := run(t,
		command.GroupStart(),
		command.Word("b"),
		command.Word("rtf", 1),
		command.Text("bold"),
		command.Word("par"),
		command.GroupStart(),
		command.Text("inner"),
		command.GroupEnd(),
		command.Text("after"),
		command.GroupEnd(),
	)

	if len(doc.Paragraphs) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(doc.Paragraphs))
	}
	first := doc.Paragraphs[0].Spans[0]
	if !first.Style.Bold {
		t.Error("\\b before \\rtf should still apply to the next text")
	}

	// Closing a group ends the override
	spans := doc.Paragraphs[1].Spans
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(spans))
	}
	if !spans[0].Style.Bold {
		t.Error("override should carry into a nested group until it closes")
	}
	if spans[1].Style.Bold {
		t.Error("override should end when a group closes")
	}
}

func TestDocumentSettings(t *testing.T) {
	doc, _ := run(t, rtf(
		command.Word("margl", 1000),
		command.Word("margr", 1100),
		command.GroupStart(),
		command.Word("margt", 1200),
		command.Word("margb", 1300),
		command.Word("paperw", 11906),
		command.Word("paperh", 16838),
		command.GroupEnd(),
		command.Word("deff", 1),
	)...)

	got := []int{doc.MarginLeft, doc.MarginRight, doc.MarginTop, doc.MarginBottom, doc.PaperWidth, doc.PaperHeight}
	want := []int{1000, 1100, 1200, 1300, 11906, 16838}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("settings = %v, want %v", got, want)
			break
		}
	}
	if doc.DefaultFont != 1 || doc.Style.Font != 1 {
		t.Errorf("DefaultFont = %d, Style.Font = %d, want 1", doc.DefaultFont, doc.Style.Font)
	}
}

func TestSilentWords(t *testing.T) {
	words := []string{"uc", "lang", "langfe", "langnp", "deflang", "deflangfe", "viewkind", "widowctrl", "nowidctlpar", "sa", "sb", "sl", "slmult"}

	body := make([]command.Command, 0, len(words)+1)
	for _, w := range words {
		body = append(body, command.Word(w, 1))
	}
	body = append(body, command.Text("x"))

	doc, warnings := run(t, rtf(body...)...)
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if doc.Paragraphs[0].Spans[0].Style != model.DefaultStyle() {
		t.Errorf("silent words changed the style: %+v", doc.Paragraphs[0].Spans[0].Style)
	}
}

func TestHandlersCoverNames(t *testing.T) {
	for name, handler := range controlHandlers {
		if handler == nil {
			t.Errorf("handler for %q is nil", name)
		}
	}
}
