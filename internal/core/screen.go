package core

import (
	"strings"
)

// Screen is a pixel framebuffer standing in for the LCD.
// Every pixel write is counted: on the real panel each one costs an SPI
// transfer, so Writes is the figure partial redraw is meant to keep low.
type Screen struct {
	width  int
	height int
	pixels [][]Color
	writes uint64
}

// NewScreen creates a new framebuffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	return s
}

// allocate creates the underlying pixel storage.
func (s *Screen) allocate() {
	s.pixels = make([][]Color, s.height)
	for y := range s.pixels {
		s.pixels[y] = make([]Color, s.width)
	}
}

// Width returns the screen width in pixels.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in pixels.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the framebuffer as a rectangle anchored at the origin.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Clear fills the entire screen with c.
func (s *Screen) Clear(c Color) {
	for y := range s.pixels {
		for x := range s.pixels[y] {
			s.Set(x, y, c)
		}
	}
}

// Set writes one pixel.
// Out-of-bounds coordinates are silently ignored and not counted.
func (s *Screen) Set(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pixels[y][x] = c
	s.writes++
}

// Get returns the pixel at the given position.
// Returns the background colour for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ColorBlack
	}
	return s.pixels[y][x]
}

// FillRect fills r with c. The right and bottom edges are exclusive.
func (s *Screen) FillRect(r Rect, c Color) {
	for y := r.Top(); y < r.Bottom(); y++ {
		for x := r.Left(); x < r.Right(); x++ {
			s.Set(x, y, c)
		}
	}
}

// FillCircle fills the circle inscribed in the square at topLeft with the
// given diameter. A pixel is inside when its centre is within the radius;
// the test runs in doubled coordinates to stay in integers.
func (s *Screen) FillCircle(topLeft Point, diameter int, c Color) {
	if diameter <= 0 {
		return
	}
	cx := 2*topLeft.X + diameter
	cy := 2*topLeft.Y + diameter
	limit := diameter * diameter
	for y := topLeft.Y; y < topLeft.Y+diameter; y++ {
		dy := 2*y + 1 - cy
		for x := topLeft.X; x < topLeft.X+diameter; x++ {
			dx := 2*x + 1 - cx
			if dx*dx+dy*dy <= limit {
				s.Set(x, y, c)
			}
		}
	}
}

// Writes returns the number of pixel writes since creation or the last
// ResetWrites.
func (s *Screen) Writes() uint64 {
	return s.writes
}

// ResetWrites zeroes the write counter.
func (s *Screen) ResetWrites() {
	s.writes = 0
}

// Equal reports whether both framebuffers hold identical pixels.
func (s *Screen) Equal(other *Screen) bool {
	if s.width != other.width || s.height != other.height {
		return false
	}
	for y := range s.pixels {
		for x := range s.pixels[y] {
			if s.pixels[y][x] != other.pixels[y][x] {
				return false
			}
		}
	}
	return true
}

// String converts the framebuffer to text, '#' for lit pixels and '.' for
// background. Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			if s.pixels[y][x] == ColorBlack {
				sb.WriteRune('.')
			} else {
				sb.WriteRune('#')
			}
		}
	}
	return sb.String()
}
