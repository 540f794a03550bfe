package core

import "image/color"

// Color is the drawing role of a screen cell. Frontends resolve it to their own
// output: an ANSI code in the terminal, an RGBA fill in the window.
type Color uint8

// Scene roles.
const (
	ColorDefault Color = iota
	ColorSky
	ColorPipe
	ColorPipeCap
	ColorBird
	ColorBeak
	ColorScore
	ColorFrame
	ColorTitle
	ColorText
	ColorStatus
)

type swatch struct {
	ansi string
	rgba color.RGBA
}

var palette = [...]swatch{
	ColorDefault: {"", color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	ColorSky:     {"", color.RGBA{R: 112, G: 197, B: 206, A: 255}},
	ColorPipe:    {"2", color.RGBA{R: 83, G: 160, B: 49, A: 255}},
	ColorPipeCap: {"10", color.RGBA{R: 115, G: 191, B: 46, A: 255}},
	ColorBird:    {"11", color.RGBA{R: 250, G: 220, B: 60, A: 255}},
	ColorBeak:    {"208", color.RGBA{R: 240, G: 120, B: 30, A: 255}},
	ColorScore:   {"15", color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	ColorFrame:   {"6", color.RGBA{R: 0, G: 0, B: 0, A: 160}},
	ColorTitle:   {"11", color.RGBA{R: 250, G: 220, B: 60, A: 255}},
	ColorText:    {"7", color.RGBA{R: 230, G: 230, B: 230, A: 255}},
	ColorStatus:  {"245", color.RGBA{R: 60, G: 60, B: 60, A: 255}},
}

// ANSI returns the 256-color code for the role, or "" when the terminal's
// default foreground should be kept.
func (c Color) ANSI() string {
	if int(c) >= len(palette) {
		return ""
	}
	return palette[c].ansi
}

// RGBA returns the window fill for the role. Unknown roles fall back to the
// default.
func (c Color) RGBA() color.RGBA {
	if int(c) >= len(palette) {
		return palette[ColorDefault].rgba
	}
	return palette[c].rgba
}
