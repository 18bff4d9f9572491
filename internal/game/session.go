package game

import "github.com/vovakirdan/tui-starblitz/internal/events"

// SessionState is the coarse game session state gating whether the
// simulation ticks at all.
type SessionState int

const (
	StateMenu SessionState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns a human-readable state name.
func (s SessionState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// SessionMachine owns the session state. Transitions are externally
// triggered and idempotent: requesting the current state is a no-op and
// publishes nothing. Every real transition publishes both the generic
// StateChanged event and a state-specific entered event.
type SessionMachine struct {
	bus   *events.Bus
	state SessionState
}

// NewSessionMachine creates a session machine starting at the menu.
func NewSessionMachine(bus *events.Bus) *SessionMachine {
	return &SessionMachine{bus: bus, state: StateMenu}
}

// Current returns the current session state.
func (m *SessionMachine) Current() SessionState {
	return m.state
}

// To transitions to the requested state. Identical-state requests are
// silent no-ops.
func (m *SessionMachine) To(next SessionState) {
	if next == m.state {
		return
	}
	from := m.state
	m.state = next
	events.Publish(m.bus, StateChanged{From: from, To: next})
	switch next {
	case StateMenu:
		events.Publish(m.bus, EnteredMenu{})
	case StatePlaying:
		events.Publish(m.bus, EnteredPlaying{})
	case StatePaused:
		events.Publish(m.bus, EnteredPaused{})
	case StateGameOver:
		// Score attached by the caller via ToGameOver.
		events.Publish(m.bus, EnteredGameOver{})
	}
}

// ToGameOver transitions to GameOver carrying the final score in the
// entered event.
func (m *SessionMachine) ToGameOver(score int) {
	if m.state == StateGameOver {
		return
	}
	from := m.state
	m.state = StateGameOver
	events.Publish(m.bus, StateChanged{From: from, To: StateGameOver})
	events.Publish(m.bus, EnteredGameOver{Score: score})
}
