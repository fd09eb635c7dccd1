package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-pong/internal/core"
	"github.com/vovakirdan/pixel-pong/internal/games/pong"
	"github.com/vovakirdan/pixel-pong/internal/input"
	"github.com/vovakirdan/pixel-pong/internal/loop"
)

// bannerFrames is how long the winner line stays up.
const bannerFrames = 60

// chromeRows is the number of terminal rows used outside the field.
const chromeRows = 4

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Banner records the last round result for the status line. Register it
// with the runner as a loop.Notifier.
type Banner struct {
	winner pong.GameOver
	ttl    int
}

// RoundOver implements loop.Notifier.
func (b *Banner) RoundOver(winner pong.GameOver) {
	b.winner = winner
	b.ttl = bannerFrames
}

// Message returns the text to show, or "" once the banner expired.
func (b *Banner) Message() string {
	if b.ttl <= 0 {
		return ""
	}
	return b.winner.Message()
}

func (b *Banner) tick() {
	if b.ttl > 0 {
		b.ttl--
	}
}

// Options configures the TUI model.
type Options struct {
	Interval   time.Duration // Time between frames
	Scale      int           // Pixels per terminal column; 0 fits the terminal
	Background core.Color    // Colour treated as empty when downsampling
	Banner     *Banner       // Optional; must also be the runner's notifier
}

// Model is the Bubble Tea model for a pong match.
type Model struct {
	runner   *loop.Runner
	opts     Options
	keys     KeyMap
	help     help.Model
	scale    int
	paused   bool
	quitting bool
}

// NewModel creates a model driving runner.
func NewModel(runner *loop.Runner, opts Options) Model {
	if opts.Banner == nil {
		opts.Banner = &Banner{}
	}
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		runner: runner,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   h,
		scale:  scale,
	}
}

// Init paints the first frame and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.runner.Redraw()
	return tickCmd(m.opts.Interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		return m, nil
	case key.Matches(msg, m.keys.NewRound):
		m.runner.NewRound()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.paused {
		return m, nil
	}
	if side, dir, ok := m.keys.PaddleKey(msg); ok {
		// Only sides played from the keyboard take presses
		if p, ok := m.runner.Controller(side).(input.Presser); ok {
			p.Press(side, dir)
		}
	}
	return m, nil
}

// handleResize refits the field to the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width
	if m.opts.Scale < 1 {
		field := m.runner.Game().Field()
		m.scale = FitScale(field.Size.Width, field.Size.Height, msg.Width, msg.Height-chromeRows)
	}
	return m, nil
}

// handleTick runs one frame unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		m.runner.Step()
		m.opts.Banner.tick()
	}
	return m, tickCmd(m.opts.Interval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	stats := m.runner.Stats()
	b.WriteString(titleStyle.Render("PONG"))
	b.WriteString("  ")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("%s %d : %d %s",
		m.runner.Controller(core.SideLeft).Name(), stats.LeftWins,
		stats.RightWins, m.runner.Controller(core.SideRight).Name())))
	if m.paused {
		b.WriteString("  ")
		b.WriteString(pausedStyle.Render("[paused]"))
	}
	b.WriteString("\n")

	b.WriteString(RenderScreen(m.runner.Display().Screen(), m.scale, m.opts.Background))
	b.WriteString("\n")

	b.WriteString(bannerStyle.Render(m.opts.Banner.Message()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Run starts the Bubble Tea program with the given model.
func Run(runner *loop.Runner, opts Options) error {
	model := NewModel(runner, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
