package game

import (
	"github.com/vovakirdan/tui-starblitz/internal/config"
	"github.com/vovakirdan/tui-starblitz/internal/events"
)

// ScoreSystem accumulates points from destroyed events and maintains a
// separately eased "display score" for animated HUD counting. The display
// value advances toward the true value at a rate proportional to the
// remaining gap, never overshoots and snaps to exact equality once the gap
// is small.
type ScoreSystem struct {
	bus        *events.Bus
	cfg        config.ScoreConfig
	multiplier func() int

	score   int
	display float64

	dispose func()
}

// NewScoreSystem creates the score system. The multiplier accessor reads
// the power-up ledger at award time.
func NewScoreSystem(bus *events.Bus, cfg config.ScoreConfig, multiplier func() int) *ScoreSystem {
	s := &ScoreSystem{bus: bus, cfg: cfg, multiplier: multiplier}
	s.dispose = events.Subscribe(bus, s.onEnemyDestroyed)
	return s
}

// Reset zeroes both counters.
func (s *ScoreSystem) Reset() {
	s.score = 0
	s.display = 0
}

func (s *ScoreSystem) onEnemyDestroyed(ev EnemyDestroyed) {
	applied := ev.Score * s.multiplier()
	s.score += applied
	events.Publish(s.bus, ScoreAdded{Value: applied})
}

// Update eases the display score toward the true score.
func (s *ScoreSystem) Update(dt float64) {
	gap := float64(s.score) - s.display
	if gap <= 0 {
		s.display = float64(s.score)
		return
	}
	step := gap * s.cfg.DisplayEaseRate * dt
	if step > gap || gap < 1 {
		s.display = float64(s.score)
		return
	}
	s.display += step
}

// Score returns the true score.
func (s *ScoreSystem) Score() int { return s.score }

// DisplayScore returns the eased HUD score. Never exceeds Score.
func (s *ScoreSystem) DisplayScore() int { return int(s.display) }
