package core

// Color is the foreground color of a screen cell. Frontends map it to
// their own palette: ANSI codes in the terminal, RGBA in the window.
type Color uint8

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
	ColorOrange   // Gems
	ColorGray     // Stone lanes
	ColorPink     // Pink girl skin
	ColorDarkGray // Grid lines and HUD text
)

// ansiCodes are 256-color terminal codes. ColorDefault has none.
var ansiCodes = [...]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
	ColorPink:          "218",
	ColorDarkGray:      "238",
}

// ANSI returns the 256-color code, or "" for the terminal default and
// unknown colors.
func (c Color) ANSI() string {
	if int(c) < len(ansiCodes) {
		return ansiCodes[c]
	}
	return ""
}

// Colors lists every defined color.
func Colors() []Color {
	out := make([]Color, 0, len(ansiCodes))
	for c := ColorDefault; int(c) < len(ansiCodes); c++ {
		out = append(out, c)
	}
	return out
}
