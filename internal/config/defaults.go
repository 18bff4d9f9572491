package config

import (
	_ "embed"
)

//go:embed defaults/starblitz.yaml
var defaultStarblitzYAML []byte

// DefaultShooterConfig returns the default tuning configuration. Kept in
// sync with defaults/starblitz.yaml, which is the authoritative copy shipped
// to users; this function is the fallback if the embed fails to parse.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Player: PlayerConfig{
			Speed:             28.0,
			Health:            5,
			InvincibilitySecs: 1.5,
			Radius:            1.0,
		},
		Weapons: WeaponConfig{
			BaseFireRate:      5.0,
			FireRatePerTier:   0.5,
			BulletSpeed:       45.0,
			BulletDamage:      1.0,
			EnemyBulletSpeed:  18.0,
			EnemyBulletDamage: 1.0,
		},
		Collision: CollisionConfig{
			CellSize:   4.0,
			CullMargin: 6.0,
		},
		Waves: WaveConfig{
			IntermissionSecs: 2.5,
			MiniBossEvery:    5,
			EscalateEvery:    3,
			BulletSpeedStep:  0.12,
			SpawnRateStep:    0.10,
			BulletSpeedCap:   2.5,
			SpawnRateCap:     3.0,
		},
		PowerUps: PowerUpConfig{
			DropChance:             0.12,
			FallSpeed:              6.0,
			WeightUpgrade:          20,
			WeightShield:           15,
			WeightBomb:             10,
			WeightSpeed:            20,
			WeightMultiplier:       20,
			WeightRepair:           15,
			SpeedDurationSecs:      8.0,
			MultiplierDurationSecs: 10.0,
			SpeedBonus:             0.5,
			MultiplierValue:        2,
			ShieldHits:             3,
			BombCharges:            1,
			MaxBombs:               3,
		},
		Score: ScoreConfig{
			DisplayEaseRate: 8.0,
		},
	}
}
