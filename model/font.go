package model

import "fmt"

// FontFamily is the generic family declared by \fnil, \froman, etc.
type FontFamily string

const (
	FamilyNil    FontFamily = "nil"
	FamilyRoman  FontFamily = "roman"
	FamilySwiss  FontFamily = "swiss"
	FamilyModern FontFamily = "modern"
	FamilyScript FontFamily = "script"
	FamilyDecor  FontFamily = "decor"
	FamilyTech   FontFamily = "tech"
	FamilyBidi   FontFamily = "bidi"
)

// Font is one font table entry
type Font struct {
	Family  FontFamily `json:"family" yaml:"family"`
	Charset string     `json:"charset,omitempty" yaml:"charset,omitempty"` // encoding name, empty when not declared
	Name    string     `json:"name" yaml:"name"`
	Pitch   int        `json:"pitch" yaml:"pitch"` // 0 default, 1 fixed, 2 variable
}

// NewFont creates a font entry with the default family
func NewFont() *Font {
	return &Font{Family: FamilyRoman}
}

// GenericFamily maps the RTF family to a CSS generic family name, for renderers.
func (f *Font) GenericFamily() string {
	switch f.Family {
	case FamilyRoman:
		return "serif"
	case FamilySwiss:
		return "sans-serif"
	case FamilyModern:
		return "monospace"
	case FamilyScript:
		return "cursive"
	case FamilyDecor:
		return "fantasy"
	default:
		return ""
	}
}

// Color is one color table entry
type Color struct {
	Red   int `json:"red" yaml:"red"`
	Green int `json:"green" yaml:"green"`
	Blue  int `json:"blue" yaml:"blue"`
}

// Hex returns the color as an RRGGBB string
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", clampChannel(c.Red), clampChannel(c.Green), clampChannel(c.Blue))
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
