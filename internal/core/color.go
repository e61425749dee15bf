package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an ANSI 256-color palette index used as a cell foreground.
type Color uint8

// Named palette entries used by the built-in scenes.
const (
	ColorBlack        Color = 0
	ColorRed          Color = 1
	ColorYellow       Color = 3
	ColorWhite        Color = 7
	ColorGray         Color = 8
	ColorBrightYellow Color = 11
	ColorBrightWhite  Color = 15
	ColorDeepBlue     Color = 17
	ColorBlue         Color = 27
	ColorSky          Color = 39
	ColorCyan         Color = 51
	ColorDarkRed      Color = 88
	ColorCrimson      Color = 160
	ColorOrange       Color = 208
	ColorAmber        Color = 214
	ColorGold         Color = 220
	ColorPaleYellow   Color = 229
	ColorDarkGray     Color = 238
	ColorSmoke        Color = 244
)

var colorNames = map[string]Color{
	"black":         ColorBlack,
	"red":           ColorRed,
	"yellow":        ColorYellow,
	"white":         ColorWhite,
	"gray":          ColorGray,
	"bright_yellow": ColorBrightYellow,
	"bright_white":  ColorBrightWhite,
	"deep_blue":     ColorDeepBlue,
	"blue":          ColorBlue,
	"sky":           ColorSky,
	"cyan":          ColorCyan,
	"dark_red":      ColorDarkRed,
	"crimson":       ColorCrimson,
	"orange":        ColorOrange,
	"amber":         ColorAmber,
	"gold":          ColorGold,
	"pale_yellow":   ColorPaleYellow,
	"dark_gray":     ColorDarkGray,
	"smoke":         ColorSmoke,
}

// Code returns the palette index as the decimal string used inside
// the 38;5;n escape sequence.
func (c Color) Code() string {
	return strconv.Itoa(int(c))
}

// ParseColor converts a palette name ("orange") or a decimal index ("208")
// to a Color.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colorNames[s]; ok {
		return c, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return 0, fmt.Errorf("core: invalid color %q", s)
	}
	return Color(n), nil
}
