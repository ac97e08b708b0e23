package core

import "strings"

// Color is a foreground color for a screen cell. Surfaces translate it:
// the terminal uses ANSI 256-color codes, the browser a CSS class per value.
type Color uint8

// Palette shared by every mode. Values are stable; the web client's
// stylesheet indexes them.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	colorCount
)

var palette = [colorCount]struct {
	name string
	ansi string
}{
	ColorDefault:       {"default", ""},
	ColorRed:           {"red", "1"},
	ColorGreen:         {"green", "2"},
	ColorYellow:        {"yellow", "3"},
	ColorBlue:          {"blue", "4"},
	ColorMagenta:       {"magenta", "5"},
	ColorCyan:          {"cyan", "6"},
	ColorWhite:         {"white", "7"},
	ColorBrightRed:     {"bright_red", "9"},
	ColorBrightGreen:   {"bright_green", "10"},
	ColorBrightYellow:  {"bright_yellow", "11"},
	ColorBrightBlue:    {"bright_blue", "12"},
	ColorBrightMagenta: {"bright_magenta", "13"},
	ColorBrightCyan:    {"bright_cyan", "14"},
	ColorBrightWhite:   {"bright_white", "15"},
	ColorOrange:        {"orange", "208"},
	ColorGray:          {"gray", "245"},
}

// String returns the palette name used in sprite files.
func (c Color) String() string {
	if c >= colorCount {
		return "default"
	}
	return palette[c].name
}

// ANSI returns the 256-color code, or "" for the terminal default.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return palette[c].ansi
}

// ParseColor looks up a palette name, case-insensitively.
func ParseColor(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c := range colorCount {
		if palette[c].name == name {
			return c, true
		}
	}
	return ColorDefault, false
}
