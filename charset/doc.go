// Package charset maps RTF character set and codepage numbers to named
// encodings and decodes byte runs from hex escapes into text.
//
// RTF declares encodings in two ways. \fcharsetN on a font table entry uses
// the Windows charset identifiers, resolved with [FromCode]. \ansicpgN on the
// document uses a Windows codepage number, validated with [Codepage]. Both
// yield an encoding name that is later passed to [Decode]:
//
//	name, ok := charset.Codepage(1252) // "CP1252", true
//	text, err := charset.Decode([]byte{0x63, 0x61, 0x66, 0xe9}, name)
//	// text == "café"
//
// The tables are fixed data; extending them does not change any behavior
// beyond the codes they accept.
package charset
