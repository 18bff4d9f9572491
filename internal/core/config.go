package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState summarizes the running game for the platform layer.
type GameState struct {
	Score    int  // Current (true) score
	Wave     int  // Current wave index, 1-based
	GameOver bool // Whether the session reached game over
	Paused   bool // Whether the session is paused
	InMenu   bool // Whether the session is at the menu
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}
