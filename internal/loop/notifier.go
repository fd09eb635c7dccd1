package loop

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-pong/internal/games/pong"
)

// Notifier is told when a round ends, before the next one starts.
type Notifier interface {
	RoundOver(winner pong.GameOver)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(winner pong.GameOver)

// RoundOver implements Notifier.
func (f NotifierFunc) RoundOver(winner pong.GameOver) { f(winner) }

type nopNotifier struct{}

func (nopNotifier) RoundOver(pong.GameOver) {}

// LogNotifier writes the winner's congratulation line to a logger.
type LogNotifier struct {
	Logger *log.Logger
}

// RoundOver implements Notifier.
func (n LogNotifier) RoundOver(winner pong.GameOver) {
	n.Logger.Info(winner.Message())
}

// Notifiers fans a result out to several notifiers in order.
type Notifiers []Notifier

// RoundOver implements Notifier.
func (ns Notifiers) RoundOver(winner pong.GameOver) {
	for _, n := range ns {
		n.RoundOver(winner)
	}
}
