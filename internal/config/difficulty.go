package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a CLI value to a preset. Empty means "keep config".
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps the configured values.
func ApplyPreset(cfg *DodgeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Game.InitialEnemies = 1
		cfg.Game.WaveCooldownMS = cfg.Game.WaveCooldownMS * 3 / 2
		cfg.Enemy.MaxSpeed *= 0.8
	case DifficultyHard:
		cfg.Game.InitialEnemies += 2
		cfg.Game.WaveCooldownMS = cfg.Game.WaveCooldownMS * 7 / 10
		cfg.Player.HP = max(1, cfg.Player.HP/2)
	}
}
