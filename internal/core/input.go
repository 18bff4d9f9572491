package core

// InputSnapshot is the per-tick input state consumed by the simulation.
// Held fields report whether the control is currently active; the Pressed
// variants are edge-triggered and true only on the tick the control went
// from released to held. The platform layer builds one snapshot per tick
// from keyboard input; the simulation never reads the keyboard directly.
type InputSnapshot struct {
	// MoveX and MoveY are analog movement intents in [-1, 1].
	// Keyboard input produces -1, 0 or 1 per axis.
	MoveX float64
	MoveY float64

	// Held controls.
	Fire    bool
	Bomb    bool
	Pause   bool
	Confirm bool
	Back    bool

	// Edge-triggered variants, true only on the press tick.
	FirePressed    bool
	BombPressed    bool
	PausePressed   bool
	ConfirmPressed bool
	BackPressed    bool
}

// InputTracker accumulates raw key events between ticks and produces
// edge-triggered snapshots. The platform layer calls the Hold/Release
// methods from key handlers and Snapshot once per tick.
type InputTracker struct {
	current  InputSnapshot
	prevHeld [5]bool // fire, bomb, pause, confirm, back
}

// SetMove sets the analog movement intents, clamped to [-1, 1].
func (t *InputTracker) SetMove(x, y float64) {
	t.current.MoveX = ClampF(x, -1, 1)
	t.current.MoveY = ClampF(y, -1, 1)
}

// HoldFire marks the fire control as held.
func (t *InputTracker) HoldFire() { t.current.Fire = true }

// HoldBomb marks the bomb control as held.
func (t *InputTracker) HoldBomb() { t.current.Bomb = true }

// HoldPause marks the pause control as held.
func (t *InputTracker) HoldPause() { t.current.Pause = true }

// HoldConfirm marks the confirm control as held.
func (t *InputTracker) HoldConfirm() { t.current.Confirm = true }

// HoldBack marks the back control as held.
func (t *InputTracker) HoldBack() { t.current.Back = true }

// Snapshot finalizes the accumulated state into a per-tick snapshot,
// deriving the edge-triggered fields from the previous tick, and resets
// the accumulator for the next tick.
func (t *InputTracker) Snapshot() InputSnapshot {
	snap := t.current
	snap.FirePressed = snap.Fire && !t.prevHeld[0]
	snap.BombPressed = snap.Bomb && !t.prevHeld[1]
	snap.PausePressed = snap.Pause && !t.prevHeld[2]
	snap.ConfirmPressed = snap.Confirm && !t.prevHeld[3]
	snap.BackPressed = snap.Back && !t.prevHeld[4]

	t.prevHeld = [5]bool{snap.Fire, snap.Bomb, snap.Pause, snap.Confirm, snap.Back}
	t.current = InputSnapshot{}
	return snap
}
