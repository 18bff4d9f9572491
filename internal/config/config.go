// Package config provides YAML-based tuning configuration and difficulty
// management for the shooter.
package config

// ShooterConfig contains all tuning parameters for the game. The shapes of
// the formulas (monotonic ramps, caps, wave gates) live in the game code;
// the constants feeding them live here.
type ShooterConfig struct {
	Player    PlayerConfig     `yaml:"player"`
	Weapons   WeaponConfig     `yaml:"weapons"`
	Collision CollisionConfig  `yaml:"collision"`
	Waves     WaveConfig       `yaml:"waves"`
	PowerUps  PowerUpConfig    `yaml:"powerups"`
	Score     ScoreConfig      `yaml:"score"`
	Preset    DifficultyPreset `yaml:"-"`
}

// PlayerConfig defines player ship parameters.
type PlayerConfig struct {
	Speed             float64 `yaml:"speed"`              // Cells per second
	Health            int     `yaml:"health"`             // Starting and max hit points
	InvincibilitySecs float64 `yaml:"invincibility_secs"` // Window after taking damage
	Radius            float64 `yaml:"radius"`             // Collider radius
}

// WeaponConfig defines player and enemy weapon parameters.
type WeaponConfig struct {
	BaseFireRate    float64 `yaml:"base_fire_rate"`     // Shots per second at tier 1
	FireRatePerTier float64 `yaml:"fire_rate_per_tier"` // Added per upgrade tier
	BulletSpeed     float64 `yaml:"bullet_speed"`       // Cells per second
	BulletDamage    float64 `yaml:"bullet_damage"`

	// Enemy bullet parameters, before the wave director's escalation
	// multipliers.
	EnemyBulletSpeed  float64 `yaml:"enemy_bullet_speed"` // Cells per second
	EnemyBulletDamage float64 `yaml:"enemy_bullet_damage"`
}

// CollisionConfig defines spatial partitioning parameters.
type CollisionConfig struct {
	CellSize   float64 `yaml:"cell_size"`   // Broad-phase grid cell size, ~3-4x typical radius
	CullMargin float64 `yaml:"cull_margin"` // Off-screen margin before transient entities die
}

// WaveConfig defines wave progression parameters.
type WaveConfig struct {
	IntermissionSecs float64 `yaml:"intermission_secs"` // Pause between waves
	MiniBossEvery    int     `yaml:"miniboss_every"`    // Every Nth wave is a mini-boss wave
	EscalateEvery    int     `yaml:"escalate_every"`    // Every Mth wave raises the global multipliers
	BulletSpeedStep  float64 `yaml:"bullet_speed_step"` // Added to the bullet-speed multiplier per escalation
	SpawnRateStep    float64 `yaml:"spawn_rate_step"`   // Added to the spawn-rate multiplier per escalation
	BulletSpeedCap   float64 `yaml:"bullet_speed_cap"`  // Multiplier ceiling
	SpawnRateCap     float64 `yaml:"spawn_rate_cap"`    // Multiplier ceiling
}

// PowerUpConfig defines drop and effect parameters.
type PowerUpConfig struct {
	DropChance float64 `yaml:"drop_chance"` // Probability of a drop on enemy death, 0-1
	FallSpeed  float64 `yaml:"fall_speed"`  // Pickup fall speed, cells per second

	// Spawn weights (relative, higher = more common).
	WeightUpgrade    int `yaml:"weight_upgrade"`
	WeightShield     int `yaml:"weight_shield"`
	WeightBomb       int `yaml:"weight_bomb"`
	WeightSpeed      int `yaml:"weight_speed"`
	WeightMultiplier int `yaml:"weight_multiplier"`
	WeightRepair     int `yaml:"weight_repair"`

	// Timed effect parameters.
	SpeedDurationSecs      float64 `yaml:"speed_duration_secs"`
	MultiplierDurationSecs float64 `yaml:"multiplier_duration_secs"`
	SpeedBonus             float64 `yaml:"speed_bonus"`      // Fractional move-speed bonus
	MultiplierValue        int     `yaml:"multiplier_value"` // Score multiplier while active

	// Resource effect parameters.
	ShieldHits  int `yaml:"shield_hits"`  // Hits absorbed per shield pickup
	BombCharges int `yaml:"bomb_charges"` // Charges granted per bomb pickup
	MaxBombs    int `yaml:"max_bombs"`    // Carry cap
}

// ScoreConfig defines scoring parameters.
type ScoreConfig struct {
	DisplayEaseRate float64 `yaml:"display_ease_rate"` // Fraction of the gap closed per second
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
