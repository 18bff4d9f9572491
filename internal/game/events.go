package game

// Event payloads published on the bus. Consumers (score, waves, power-ups,
// session, plus external UI/audio subscribers) react without the publisher
// knowing who, if anyone, is listening.

// EnemyDestroyed is published when an enemy's health reaches zero.
type EnemyDestroyed struct {
	X, Y    float64
	Faction Faction
	Score   int
}

// EnemyHit is published when an enemy takes non-lethal damage, for flash
// effects.
type EnemyHit struct {
	X, Y float64
}

// PlayerDamaged is published when the player takes a hit outside the
// invincibility window. The player system applies the health loss.
type PlayerDamaged struct {
	Amount float64
}

// PlayerDied is published once when player health reaches zero.
type PlayerDied struct{}

// ShieldAbsorbed is published when an active shield soaks a hit instead of
// health.
type ShieldAbsorbed struct {
	Remaining int
}

// ScoreAdded is published by the score system after applying the current
// multiplier.
type ScoreAdded struct {
	Value int
}

// WaveStarted is published when a new wave's enemies are spawned.
type WaveStarted struct {
	Wave int
}

// BossWarning is published when the intermission before a mini-boss wave
// begins.
type BossWarning struct {
	Wave int
}

// PowerUpDropped is published by the damage resolver when the drop roll
// succeeds; the power-up system spawns the pickup.
type PowerUpDropped struct {
	X, Y float64
}

// PowerUpCollected is published when the player picks up a power-up.
type PowerUpCollected struct {
	X, Y float64
	Kind PowerUpKind
}

// BombDetonated is published when the player spends a bomb charge.
type BombDetonated struct {
	Remaining int
}

// StateChanged is the generic session transition event.
type StateChanged struct {
	From, To SessionState
}

// EnteredMenu, EnteredPlaying, EnteredPaused and EnteredGameOver are the
// per-state transition events, letting UI and audio subscribe to a single
// state without filtering StateChanged.
type (
	EnteredMenu     struct{}
	EnteredPlaying  struct{}
	EnteredPaused   struct{}
	EnteredGameOver struct{ Score int }
)
