package charset

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Encoding names used by the RTF charset keywords.
const (
	ASCII    = "ASCII"
	MacRoman = "MacRoman"
	CP437    = "CP437"
	CP850    = "CP850"
)

// ErrUnsupportedEncoding is returned by Decode for names with no decoder.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// codeToCharset maps \fcharset identifiers to encoding names.
// Code 1 (default charset) is not listed: it means "inherit".
var codeToCharset = map[int]string{
	0:   ASCII,
	77:  MacRoman,
	128: "SHIFT_JIS",
	129: "CP949", // Hangul
	130: "JOHAB",
	134: "CP936", // GB2312
	136: "BIG5",
	161: "CP1253", // Greek
	162: "CP1254", // Turkish
	163: "CP1258", // Vietnamese
	177: "CP862",  // Hebrew
	178: "CP1256", // Arabic
	186: "CP1257", // Baltic
	204: "CP1251", // Cyrillic
	222: "CP874",  // Thai
	238: "CP238",  // Eastern European
	254: CP437,
}

// availableCodepages is the \ansicpg whitelist.
var availableCodepages = map[int]bool{
	437: true, 737: true, 775: true, 850: true, 852: true, 853: true,
	855: true, 857: true, 858: true, 860: true, 861: true, 863: true,
	865: true, 866: true, 869: true, 932: true, 1125: true, 1250: true,
	1251: true, 1252: true, 1253: true, 1254: true, 1257: true,
}

// decoders maps encoding names to x/text encodings. ASCII decodes as
// Windows-1252 since producers routinely put 8-bit text under \ansi.
var decoders = map[string]encoding.Encoding{
	ASCII:       charmap.Windows1252,
	MacRoman:    charmap.Macintosh,
	"SHIFT_JIS": japanese.ShiftJIS,
	"CP932":     japanese.ShiftJIS,
	"CP949":     korean.EUCKR,
	"CP936":     simplifiedchinese.GBK,
	"BIG5":      traditionalchinese.Big5,
	CP437:       charmap.CodePage437,
	CP850:       charmap.CodePage850,
	"CP852":     charmap.CodePage852,
	"CP855":     charmap.CodePage855,
	"CP858":     charmap.CodePage858,
	"CP860":     charmap.CodePage860,
	"CP862":     charmap.CodePage862,
	"CP863":     charmap.CodePage863,
	"CP865":     charmap.CodePage865,
	"CP866":     charmap.CodePage866,
	"CP874":     charmap.Windows874,
	"CP1250":    charmap.Windows1250,
	"CP1251":    charmap.Windows1251,
	"CP1252":    charmap.Windows1252,
	"CP1253":    charmap.Windows1253,
	"CP1254":    charmap.Windows1254,
	"CP1255":    charmap.Windows1255,
	"CP1256":    charmap.Windows1256,
	"CP1257":    charmap.Windows1257,
	"CP1258":    charmap.Windows1258,
}

// FromCode returns the encoding name for an \fcharset identifier.
func FromCode(code int) (string, bool) {
	name, ok := codeToCharset[code]
	return name, ok
}

// Codepage returns the encoding name for an \ansicpg number if it is on the
// accepted list.
func Codepage(code int) (string, bool) {
	if !availableCodepages[code] {
		return "", false
	}
	return "CP" + strconv.Itoa(code), true
}

// Lookup returns the x/text encoding registered for name.
func Lookup(name string) (encoding.Encoding, bool) {
	enc, ok := decoders[name]
	return enc, ok
}

// Decode converts a run of bytes in the named encoding to UTF-8 text.
// Multi-byte encodings need the whole run, so callers should buffer
// consecutive hex escapes and decode them together.
func Decode(b []byte, name string) (string, error) {
	enc, ok := decoders[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	return string(out), nil
}

// Latin1 decodes b byte-per-rune. It never fails and is the fallback for
// encodings without a decoder.
func Latin1(b []byte) string {
	// ISO-8859-1 maps every byte, so the decoder cannot fail
	out, _ := charmap.ISO8859_1.NewDecoder().Bytes(b)
	return string(out)
}
