// Package display paints game shapes into a pixel framebuffer.
package display

import (
	"github.com/vovakirdan/pixel-pong/internal/core"
	"github.com/vovakirdan/pixel-pong/internal/games/pong"
)

// Palette assigns a colour to each kind of shape.
type Palette struct {
	Background core.Color
	Paddle     core.Color
	Ball       core.Color
}

// DefaultPalette matches the colours of the LCD build: yellow paddles and
// a green ball on black.
func DefaultPalette() Palette {
	return Palette{
		Background: core.ColorBlack,
		Paddle:     core.ColorYellow,
		Ball:       core.ColorGreen,
	}
}

// Display owns a framebuffer and knows how to draw and erase shapes on it.
type Display struct {
	screen  *core.Screen
	palette Palette
}

// New creates a display backed by a fresh width x height framebuffer
// cleared to the palette background.
func New(width, height int, palette Palette) *Display {
	d := &Display{
		screen:  core.NewScreen(width, height),
		palette: palette,
	}
	d.screen.Clear(palette.Background)
	d.screen.ResetWrites()
	return d
}

// Screen returns the underlying framebuffer.
func (d *Display) Screen() *core.Screen {
	return d.screen
}

// Palette returns the colours in use.
func (d *Display) Palette() Palette {
	return d.palette
}

// Draw paints each shape in its palette colour.
func (d *Display) Draw(shapes []pong.ScreenObject) {
	for _, s := range shapes {
		d.fill(s, d.colorOf(s))
	}
}

// Erase paints each shape in the background colour.
func (d *Display) Erase(shapes []pong.ScreenObject) {
	for _, s := range shapes {
		d.fill(s, d.palette.Background)
	}
}

// Redraw clears the whole framebuffer and draws shapes on it.
func (d *Display) Redraw(shapes []pong.ScreenObject) {
	d.screen.Clear(d.palette.Background)
	d.Draw(shapes)
}

func (d *Display) colorOf(s pong.ScreenObject) core.Color {
	if _, ok := s.(pong.CircleShape); ok {
		return d.palette.Ball
	}
	return d.palette.Paddle
}

func (d *Display) fill(s pong.ScreenObject, c core.Color) {
	switch shape := s.(type) {
	case pong.RectangleShape:
		d.screen.FillRect(shape.Rect, c)
	case pong.CircleShape:
		d.screen.FillCircle(shape.TopLeft, shape.Diameter, c)
	}
}
