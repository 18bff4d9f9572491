package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-starblitz/internal/core"
	"github.com/vovakirdan/tui-starblitz/internal/registry"
	"github.com/vovakirdan/tui-starblitz/internal/storage"
)

// moveHoldTicks is how long a movement key press keeps its axis engaged.
// Terminal input has no key-up events; without a hold window the ship
// would stutter between the key-repeat delay and the repeat rate.
const moveHoldTicks = 8

// highScoreAware is implemented by games that show a persisted best score.
type highScoreAware interface {
	SetHighScore(score int)
}

// Model is the Bubble Tea model driving a single game.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	store   *storage.Store
	config  core.RuntimeConfig
	keys    KeyMap
	tracker core.InputTracker

	moveX, moveY float64
	moveXTTL     int
	moveYTTL     int

	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the score has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if aware, ok := game.(highScoreAware); ok && store != nil {
		if high, err := store.HighScore(game.ID()); err == nil {
			aware.SetHighScore(high)
		}
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   DefaultKeyMap(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
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
	var x, y float64
	if m.keys.Apply(msg, &m.tracker, &x, &y) {
		m.quitting = true
		return m, tea.Quit
	}

	// A fresh axis press engages the hold window; the other axis keeps
	// its remaining time so diagonals survive alternating repeats.
	if x != 0 {
		m.moveX = x
		m.moveXTTL = moveHoldTicks
	}
	if y != 0 {
		m.moveY = y
		m.moveYTTL = moveHoldTicks
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Mid-run resizes restart the run; the playfield geometry changed.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.moveXTTL > 0 {
		m.moveXTTL--
		if m.moveXTTL == 0 {
			m.moveX = 0
		}
	}
	if m.moveYTTL > 0 {
		m.moveYTTL--
		if m.moveYTTL == 0 {
			m.moveY = 0
		}
	}
	m.tracker.SetMove(m.moveX, m.moveY)

	result := m.game.Step(m.tracker.Snapshot())
	prevOver := m.gameState.GameOver
	m.gameState = result.State

	// Save the run once per game over.
	if m.gameState.GameOver && !prevOver {
		m.scoreSaved = false
	}
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, play continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Wave)
		}
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
