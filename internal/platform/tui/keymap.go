package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-pong/internal/core"
)

// KeyMap defines the key bindings for a match.
type KeyMap struct {
	LeftUp    key.Binding
	LeftDown  key.Binding
	RightUp   key.Binding
	RightDown key.Binding
	Pause     key.Binding
	NewRound  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown},
		{k.Pause, k.NewRound, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LeftUp: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "left up"),
		),
		LeftDown: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "left down"),
		),
		RightUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "right up"),
		),
		RightDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "right down"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		NewRound: key.NewBinding(
			key.WithKeys("n", "r"),
			key.WithHelp("n", "new round"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PaddleKey translates a key message to a paddle request.
// ok is false for keys that do not steer a paddle.
func (k KeyMap) PaddleKey(msg tea.KeyMsg) (side core.Side, dir core.Direction, ok bool) {
	switch {
	case key.Matches(msg, k.LeftUp):
		return core.SideLeft, core.DirectionUp, true
	case key.Matches(msg, k.LeftDown):
		return core.SideLeft, core.DirectionDown, true
	case key.Matches(msg, k.RightUp):
		return core.SideRight, core.DirectionUp, true
	case key.Matches(msg, k.RightDown):
		return core.SideRight, core.DirectionDown, true
	}
	return 0, core.DirectionStay, false
}
