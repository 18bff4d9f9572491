package game

import (
	"fmt"

	"github.com/vovakirdan/tui-starblitz/internal/core"
	"github.com/vovakirdan/tui-starblitz/internal/ecs"
)

// Drawable is one renderable instance: a pure projection of an entity's
// Transform and Sprite, computed fresh on every request. The renderer owns
// how a mesh id becomes pixels (here: terminal glyphs).
type Drawable struct {
	X, Y           float64
	Rotation       float64
	ScaleX, ScaleY float64
	R, G, B, A     float64
	Emissive       bool
	Mesh           MeshID
}

// HUD is the per-tick HUD projection consumed by the UI boundary.
type HUD struct {
	Score        int
	DisplayScore int
	HighScore    int
	Wave         int
	Health       int
	MaxHealth    int
	ShieldHits   int
	Bombs        int
	Multiplier   int
	Effects      []TimedEffect
	Intermission bool
	State        SessionState
}

// Drawables returns all entities holding Transform+Sprite as drawable
// instances, in store order.
func (g *Game) Drawables() []Drawable {
	var out []Drawable
	for _, e := range g.world.Query(TagTransform, TagSprite) {
		tr, _ := ecs.Get[*Transform](g.world, e, TagTransform)
		sp, _ := ecs.Get[*Sprite](g.world, e, TagSprite)
		out = append(out, Drawable{
			X: tr.Pos.X, Y: tr.Pos.Y,
			Rotation: tr.Rotation,
			ScaleX:   tr.ScaleX, ScaleY: tr.ScaleY,
			R: sp.R, G: sp.G, B: sp.B, A: sp.A,
			Emissive: sp.Emissive,
			Mesh:     sp.Mesh,
		})
	}
	return out
}

// HUD returns the current HUD projection.
func (g *Game) HUD() HUD {
	h := HUD{
		Score:        g.score.Score(),
		DisplayScore: g.score.DisplayScore(),
		HighScore:    g.highScore,
		Wave:         g.waves.Wave(),
		ShieldHits:   g.powerups.ShieldHits(),
		Bombs:        g.powerups.Bombs(),
		Multiplier:   g.powerups.Multiplier(),
		Effects:      g.powerups.Effects(),
		Intermission: g.waves.Intermission(),
		State:        g.session.Current(),
	}
	if p := g.player.Entity(); p != 0 && g.world.Alive(p) {
		if hp, ok := ecs.Get[*Health](g.world, p, TagHealth); ok {
			h.Health = int(hp.Current)
			h.MaxHealth = int(hp.Max)
		}
	}
	return h
}

// meshGlyph maps mesh ids to terminal glyphs.
func meshGlyph(m MeshID) rune {
	switch m {
	case MeshPlayer:
		return '▲'
	case MeshPlayerBullet:
		return '|'
	case MeshEnemyBullet:
		return '•'
	case MeshDrone:
		return 'v'
	case MeshDiver:
		return 'V'
	case MeshStrafer:
		return 'x'
	case MeshGunner:
		return 'W'
	case MeshMiniBoss:
		return '▼'
	case MeshPowerUp:
		return '◆'
	default:
		return '?'
	}
}

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.session.Current() {
	case StateMenu:
		g.renderMenu(dst)
		return
	case StatePlaying, StatePaused, StateGameOver:
		g.renderPlayfield(dst)
	}

	switch g.session.Current() {
	case StatePaused:
		dst.DrawTextCentered(dst.Height()/2, "= PAUSED =", core.ColorBrightYellow)
		dst.DrawTextCentered(dst.Height()/2+1, "P to resume, ESC for menu", core.ColorGray)
	case StateGameOver:
		dst.DrawTextCentered(dst.Height()/2-1, "GAME OVER", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Score: %d   Best: %d", g.score.Score(), g.highScore), core.ColorWhite)
		dst.DrawTextCentered(dst.Height()/2+3, "ENTER to retry, ESC for menu", core.ColorGray)
	}
}

func (g *Game) renderMenu(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-3, "S T A R   B L I T Z", core.ColorBrightCyan)
	dst.DrawTextCentered(mid-1, "arrows/WASD move · SPACE fire · B bomb", core.ColorGray)
	dst.DrawTextCentered(mid, "P pause · Q quit", core.ColorGray)
	dst.DrawTextCentered(mid+2, "Press ENTER to launch", core.ColorBrightGreen)
	if g.highScore > 0 {
		dst.DrawTextCentered(mid+4, fmt.Sprintf("Best: %d", g.highScore), core.ColorYellow)
	}
}

func (g *Game) renderPlayfield(dst *core.Screen) {
	blink := false
	if p := g.player.Entity(); p != 0 {
		if hp, ok := ecs.Get[*Health](g.world, p, TagHealth); ok && hp.Invincible {
			blink = g.tick%8 < 4
		}
	}

	player := g.player.Entity()
	for _, e := range g.world.Query(TagTransform, TagSprite) {
		if e == player && blink {
			continue
		}
		tr, _ := ecs.Get[*Transform](g.world, e, TagTransform)
		sp, _ := ecs.Get[*Sprite](g.world, e, TagSprite)
		cell := core.Cell{
			Rune:  meshGlyph(sp.Mesh),
			Color: core.ColorFromRGB(sp.R, sp.G, sp.B, sp.Emissive),
		}
		x, y := int(tr.Pos.X), int(tr.Pos.Y)
		dst.SetCell(x, y, cell)
		if sp.Mesh == MeshMiniBoss {
			dst.SetCell(x-1, y, cell)
			dst.SetCell(x+1, y, cell)
		}
	}

	g.renderHUD(dst)

	if g.waves.Intermission() && g.session.Current() == StatePlaying {
		dst.DrawTextCentered(dst.Height()/3, fmt.Sprintf("- WAVE %d -", g.waves.Wave()+1), core.ColorBrightYellow)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	h := g.HUD()

	hearts := ""
	for i := 0; i < h.MaxHealth; i++ {
		if i < h.Health {
			hearts += "♥"
		} else {
			hearts += "·"
		}
	}

	left := fmt.Sprintf("SCORE %06d  HI %06d", h.DisplayScore, h.HighScore)
	dst.DrawText(1, 0, left, core.ColorWhite)
	dst.DrawText(1+len(left)+2, 0, hearts, core.ColorBrightRed)

	right := fmt.Sprintf("WAVE %d", h.Wave)
	if h.Multiplier > 1 {
		right = fmt.Sprintf("x%d  %s", h.Multiplier, right)
	}
	if h.ShieldHits > 0 {
		right = fmt.Sprintf("S%d  %s", h.ShieldHits, right)
	}
	if h.Bombs > 0 {
		right = fmt.Sprintf("B%d  %s", h.Bombs, right)
	}
	dst.DrawText(dst.Width()-len(right)-1, 0, right, core.ColorCyan)

	// Active timed effects with remaining-time bars.
	y := 1
	for _, ef := range h.Effects {
		frac := 0.0
		if ef.Duration > 0 {
			frac = ef.Remaining / ef.Duration
		}
		barLen := int(frac*10 + 0.5)
		bar := ""
		for i := 0; i < 10; i++ {
			if i < barLen {
				bar += "="
			} else {
				bar += " "
			}
		}
		dst.DrawText(1, y, fmt.Sprintf("%-10s [%s]", ef.Kind, bar), core.ColorGreen)
		y++
	}
}
