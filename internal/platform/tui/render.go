package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-pong/internal/core"
)

// halfBlock paints the top half of a cell in the foreground colour and
// the bottom half in the background colour, so one cell shows two rows.
const halfBlock = "▀"

// colorCodes maps framebuffer colours to ANSI terminal colours.
var colorCodes = map[core.Color]lipgloss.Color{
	core.ColorBlack:   lipgloss.Color("0"),
	core.ColorRed:     lipgloss.Color("1"),
	core.ColorGreen:   lipgloss.Color("2"),
	core.ColorYellow:  lipgloss.Color("3"),
	core.ColorBlue:    lipgloss.Color("4"),
	core.ColorMagenta: lipgloss.Color("5"),
	core.ColorCyan:    lipgloss.Color("6"),
	core.ColorWhite:   lipgloss.Color("7"),
	core.ColorOrange:  lipgloss.Color("208"),
	core.ColorGray:    lipgloss.Color("245"),
}

// cellColors is the pair of colours one terminal cell shows.
type cellColors struct {
	top, bottom core.Color
}

func (c cellColors) style() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(colorCodes[c.top]).
		Background(colorCodes[c.bottom])
}

// FitScale returns the smallest scale at which a w x h framebuffer fits
// into cols x rows terminal cells. It never returns less than 1.
func FitScale(w, h, cols, rows int) int {
	if cols <= 0 || rows <= 0 {
		return 1
	}
	scale := 1
	for (w+scale-1)/scale > cols || (h+2*scale-1)/(2*scale) > rows {
		scale++
	}
	return scale
}

// sampleBlock returns the colour a scale x scale block of pixels shows.
// Any foreground pixel wins over the background so a small ball never
// vanishes when the framebuffer is shrunk.
func sampleBlock(s *core.Screen, x0, y0, scale int, bg core.Color) core.Color {
	for y := y0; y < y0+scale; y++ {
		for x := x0; x < x0+scale; x++ {
			if c := s.Get(x, y); c != bg {
				return c
			}
		}
	}
	return bg
}

// RenderScreen converts a framebuffer to a styled string. Each terminal
// cell covers scale pixels across and 2*scale pixels down.
// Adjacent cells with the same colours are grouped to minimize ANSI
// escape sequences.
func RenderScreen(s *core.Screen, scale int, bg core.Color) string {
	if scale < 1 {
		scale = 1
	}
	cols := (s.Width() + scale - 1) / scale
	rows := (s.Height() + 2*scale - 1) / (2 * scale)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(cols*rows*4 + rows)

	line := make([]cellColors, cols)
	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}

		y := row * 2 * scale
		for col := 0; col < cols; col++ {
			x := col * scale
			line[col] = cellColors{
				top:    sampleBlock(s, x, y, scale, bg),
				bottom: sampleBlock(s, x, y+scale, scale, bg),
			}
		}

		// Group consecutive cells with the same colours
		for start := 0; start < cols; {
			end := start
			for end < cols && line[end] == line[start] {
				end++
			}
			sb.WriteString(line[start].style().Render(strings.Repeat(halfBlock, end-start)))
			start = end
		}
	}
	return sb.String()
}
