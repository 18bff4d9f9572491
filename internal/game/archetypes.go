package game

// FireMode selects how an archetype aims its shots.
type FireMode int

const (
	FireNone  FireMode = iota
	FireDown           // Straight down
	FireAimed          // At the last known player position
	FireFan            // Fixed symmetric angular fan, downward
)

// Archetype describes one enemy family: its behavior, combat stats and the
// wave-composition formula inputs. Each archetype has a wave-index gate
// below which it never appears and a count that grows with the wave index
// up to a cap.
type Archetype struct {
	Faction    Faction
	Behavior   BehaviorID
	Mesh       MeshID
	Health     float64
	Radius     float64
	Speed      float64 // Cells per second
	FireRate   float64 // Shots per second; 0 means the unit never fires
	FireMode   FireMode
	ScoreValue int

	MinWave   int     // First wave index this archetype can appear on
	BaseCount int     // Count on its first eligible wave
	PerWave   float64 // Added per wave past the gate
	MaxCount  int     // Count ceiling

	R, G, B float64 // Sprite color
}

// CountFor returns how many units of this archetype wave index `wave`
// fields: zero below the gate, then a monotonic ramp capped at MaxCount.
func (a Archetype) CountFor(wave int) int {
	if wave < a.MinWave {
		return 0
	}
	n := a.BaseCount + int(float64(wave-a.MinWave)*a.PerWave)
	if n > a.MaxCount {
		n = a.MaxCount
	}
	return n
}

// archetypes is the normal wave roster, cheapest first.
var archetypes = []Archetype{
	{
		Faction: FactionDrone, Behavior: BehaviorDrift, Mesh: MeshDrone,
		Health: 1, Radius: 1.0, Speed: 7, FireRate: 0.25, FireMode: FireDown,
		ScoreValue: 100,
		MinWave:    1, BaseCount: 4, PerWave: 1.0, MaxCount: 12,
		R: 0.8, G: 0.2, B: 0.2,
	},
	{
		Faction: FactionStrafer, Behavior: BehaviorStrafe, Mesh: MeshStrafer,
		Health: 2, Radius: 1.0, Speed: 10, FireRate: 0.4, FireMode: FireDown,
		ScoreValue: 150,
		MinWave:    2, BaseCount: 2, PerWave: 0.5, MaxCount: 8,
		R: 0.9, G: 0.6, B: 0.1,
	},
	{
		Faction: FactionDiver, Behavior: BehaviorDive, Mesh: MeshDiver,
		Health: 1, Radius: 1.0, Speed: 9, FireRate: 0, FireMode: FireNone,
		ScoreValue: 200,
		MinWave:    3, BaseCount: 2, PerWave: 0.5, MaxCount: 6,
		R: 0.8, G: 0.2, B: 0.8,
	},
	{
		Faction: FactionGunner, Behavior: BehaviorGunner, Mesh: MeshGunner,
		Health: 3, Radius: 1.2, Speed: 6, FireRate: 0.6, FireMode: FireAimed,
		ScoreValue: 300,
		MinWave:    4, BaseCount: 1, PerWave: 0.34, MaxCount: 4,
		R: 0.2, G: 0.4, B: 0.9,
	},
}

// miniBoss is spawned on every Nth wave, augmenting the normal roster with
// a single high-health unit. Its health scales with the wave index.
var miniBoss = Archetype{
	Faction: FactionBoss, Behavior: BehaviorBoss, Mesh: MeshMiniBoss,
	Health: 20, Radius: 2.2, Speed: 8, FireRate: 0.8, FireMode: FireFan,
	ScoreValue: 1000,
	R:          0.9, G: 0.9, B: 0.2,
}

// archetypeByFaction resolves combat parameters for a live enemy. The AI
// engine uses it to look up speed and fire settings by faction.
func archetypeByFaction(f Faction) Archetype {
	if f == FactionBoss {
		return miniBoss
	}
	for _, a := range archetypes {
		if a.Faction == f {
			return a
		}
	}
	return archetypes[0]
}
