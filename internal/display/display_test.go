package display

import (
	"testing"

	"github.com/vovakirdan/pixel-pong/internal/core"
	"github.com/vovakirdan/pixel-pong/internal/games/pong"
)

func TestNewIsBlank(t *testing.T) {
	d := New(16, 8, DefaultPalette())

	if d.Screen().Writes() != 0 {
		t.Errorf("Writes() = %d after New, expected 0", d.Screen().Writes())
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			if c := d.Screen().Get(x, y); c != core.ColorBlack {
				t.Fatalf("pixel (%d, %d) = %v, expected black", x, y, c)
			}
		}
	}
}

func TestDrawUsesPalette(t *testing.T) {
	d := New(20, 20, DefaultPalette())

	d.Draw([]pong.ScreenObject{
		pong.RectangleShape{Rect: core.NewRect(0, 0, 2, 5)},
		pong.CircleShape{TopLeft: core.Point{X: 10, Y: 10}, Diameter: 6},
	})

	if c := d.Screen().Get(1, 4); c != core.ColorYellow {
		t.Errorf("paddle pixel = %v, expected yellow", c)
	}
	if c := d.Screen().Get(2, 4); c != core.ColorBlack {
		t.Errorf("pixel right of paddle = %v, expected black", c)
	}
	if c := d.Screen().Get(13, 13); c != core.ColorGreen {
		t.Errorf("ball centre pixel = %v, expected green", c)
	}
	if c := d.Screen().Get(10, 10); c != core.ColorBlack {
		t.Errorf("ball box corner = %v, expected black", c)
	}
}

func TestEraseRestoresBackground(t *testing.T) {
	d := New(20, 20, DefaultPalette())
	blank := New(20, 20, DefaultPalette())

	shapes := []pong.ScreenObject{
		pong.RectangleShape{Rect: core.NewRect(3, 3, 4, 4)},
		pong.CircleShape{TopLeft: core.Point{X: 12, Y: 2}, Diameter: 6},
	}
	d.Draw(shapes)
	d.Erase(shapes)

	if !d.Screen().Equal(blank.Screen()) {
		t.Errorf("erase left pixels behind:\n%s", d.Screen())
	}
}

func TestRedraw(t *testing.T) {
	d := New(10, 10, DefaultPalette())
	d.Draw([]pong.ScreenObject{pong.RectangleShape{Rect: core.NewRect(0, 0, 10, 10)}})
	d.Screen().ResetWrites()

	d.Redraw([]pong.ScreenObject{pong.RectangleShape{Rect: core.NewRect(2, 2, 2, 2)}})

	if c := d.Screen().Get(0, 0); c != core.ColorBlack {
		t.Errorf("Redraw kept old content: %v", c)
	}
	if c := d.Screen().Get(3, 3); c != core.ColorYellow {
		t.Errorf("Redraw missed new content: %v", c)
	}
	if w := d.Screen().Writes(); w != 100+4 {
		t.Errorf("Writes() = %d, expected 104", w)
	}
}

func TestClippedShapes(t *testing.T) {
	d := New(10, 10, DefaultPalette())

	// A ball bounced off the top can poke above the field
	d.Draw([]pong.ScreenObject{pong.CircleShape{TopLeft: core.Point{X: 2, Y: -2}, Diameter: 6}})

	if c := d.Screen().Get(5, 0); c != core.ColorGreen {
		t.Errorf("visible part of clipped ball = %v, expected green", c)
	}
}
