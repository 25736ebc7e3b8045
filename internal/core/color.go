package core

import "image/color"

// Color identifies a palette entry for a screen cell.
// The terminal maps it to an ANSI color, the window frontend to RGBA.
type Color uint8

// Palette entries. ColorDefault means "leave the terminal color alone".
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
	ColorOrange
	ColorPurple
	ColorGray
)

var palette = [...]color.RGBA{
	ColorDefault:      {255, 255, 255, 255},
	ColorRed:          {200, 0, 0, 255},
	ColorGreen:        {0, 200, 0, 255},
	ColorYellow:       {220, 220, 0, 255},
	ColorBlue:         {0, 0, 255, 255},
	ColorMagenta:      {200, 0, 200, 255},
	ColorCyan:         {0, 200, 200, 255},
	ColorWhite:        {255, 255, 255, 255},
	ColorBrightRed:    {255, 0, 0, 255},
	ColorBrightGreen:  {0, 255, 0, 255},
	ColorBrightYellow: {255, 255, 0, 255},
	ColorBrightBlue:   {80, 160, 255, 255},
	ColorOrange:       {255, 165, 0, 255},
	ColorPurple:       {128, 0, 128, 255},
	ColorGray:         {128, 128, 128, 255},
}

// RGBA returns the window-frontend color for c. Unknown values render white.
func (c Color) RGBA() color.RGBA {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[ColorDefault]
}
