package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the built-in configuration. It mirrors
// defaults/dodge.yaml and is used when the embedded file cannot be parsed.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Scene: SceneConfig{
			Width:  1000,
			Height: 800,
		},
		Player: PlayerConfig{
			Motion: Motion{
				MaxSpeed:          15,
				Acceleration:      1.6,
				FrictionAmplifier: 0.5,
				MinSpeedThreshold: 0.01,
				Size:              6,
				TrailAmount:       25,
			},
			HP:    100,
			MaxHP: 100,
			Spawn: "center",
		},
		Enemy: EnemyConfig{
			Motion: Motion{
				MaxSpeed:          10,
				Acceleration:      1.2,
				FrictionAmplifier: 0.5,
				MinSpeedThreshold: 0.01,
				Size:              10,
				TrailAmount:       25,
			},
			ReevaluateMS: 25,
			TTLMS:        15000,
			Wander:       0.25,
		},
		Game: GameConfig{
			WaveCooldownMS:   10000,
			FirstWaveDelayMS: 2000,
			WarningMS:        1500,
			InitialEnemies:   1,
			InitialWave:      0,
			ScoreTickMS:      250,
			ScoreStep:        0.1,
			DamageCooldownMS: 250,
		},
		Input: InputConfig{
			PollMS: 50,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
