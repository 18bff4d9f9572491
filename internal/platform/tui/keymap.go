package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-starblitz/internal/core"
)

// KeyMap holds the key bindings for the shooter. Bindings are declared with
// bubbles/key so they surface in help output and stay testable.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Fire    key.Binding
	Bomb    key.Binding
	Pause   key.Binding
	Confirm key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "move right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Bomb: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bomb"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Apply feeds a key message into the input tracker and reports any
// movement axis the key engaged. The caller owns movement smoothing; the
// tracker only sees the action controls. Returns true on a quit request.
func (k KeyMap) Apply(msg tea.KeyMsg, tracker *core.InputTracker, moveX, moveY *float64) bool {
	switch {
	case key.Matches(msg, k.Quit):
		return true
	case key.Matches(msg, k.Up):
		*moveY = -1
	case key.Matches(msg, k.Down):
		*moveY = 1
	case key.Matches(msg, k.Left):
		*moveX = -1
	case key.Matches(msg, k.Right):
		*moveX = 1
	case key.Matches(msg, k.Fire):
		tracker.HoldFire()
	case key.Matches(msg, k.Bomb):
		tracker.HoldBomb()
	case key.Matches(msg, k.Pause):
		tracker.HoldPause()
	case key.Matches(msg, k.Confirm):
		tracker.HoldConfirm()
	case key.Matches(msg, k.Back):
		tracker.HoldBack()
	}
	return false
}
