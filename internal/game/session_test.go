package game

import (
	"testing"

	"github.com/vovakirdan/tui-starblitz/internal/events"
)

func TestSessionTransitionsPublishEvents(t *testing.T) {
	bus := events.NewBus()
	m := NewSessionMachine(bus)

	var log []StateChanged
	events.Subscribe(bus, func(ev StateChanged) { log = append(log, ev) })

	entered := 0
	events.Subscribe(bus, func(EnteredPlaying) { entered++ })

	m.To(StatePlaying)
	m.To(StatePaused)
	m.To(StatePlaying)

	if m.Current() != StatePlaying {
		t.Fatalf("state %v, want playing", m.Current())
	}
	if len(log) != 3 {
		t.Fatalf("got %d StateChanged events, want 3", len(log))
	}
	if log[0].From != StateMenu || log[0].To != StatePlaying {
		t.Errorf("first transition %+v", log[0])
	}
	if entered != 2 {
		t.Errorf("EnteredPlaying published %d times, want 2", entered)
	}
}

func TestSessionSameStateIsSilent(t *testing.T) {
	bus := events.NewBus()
	m := NewSessionMachine(bus)

	changes := 0
	events.Subscribe(bus, func(StateChanged) { changes++ })

	m.To(StateMenu)
	m.To(StateMenu)
	if changes != 0 {
		t.Errorf("same-state transitions published %d events", changes)
	}
}

func TestGameOverCarriesFinalScore(t *testing.T) {
	bus := events.NewBus()
	m := NewSessionMachine(bus)

	var got []EnteredGameOver
	events.Subscribe(bus, func(ev EnteredGameOver) { got = append(got, ev) })

	m.To(StatePlaying)
	m.ToGameOver(4200)

	if m.Current() != StateGameOver {
		t.Fatalf("state %v, want game over", m.Current())
	}
	if len(got) != 1 || got[0].Score != 4200 {
		t.Errorf("game-over events %+v, want one with score 4200", got)
	}
}

func TestSessionStateStrings(t *testing.T) {
	names := map[SessionState]string{
		StateMenu:     "menu",
		StatePlaying:  "playing",
		StatePaused:   "paused",
		StateGameOver: "game-over",
	}
	for s, want := range names {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", s, s.String(), want)
		}
	}
}
