// Package config provides YAML-based game configuration loading and
// difficulty presets for the game.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// DodgeConfig contains all tunable parameters of the game.
type DodgeConfig struct {
	Scene  SceneConfig  `yaml:"scene"`
	Player PlayerConfig `yaml:"player"`
	Enemy  EnemyConfig  `yaml:"enemy"`
	Game   GameConfig   `yaml:"game"`
	Input  InputConfig  `yaml:"input"`
}

// SceneConfig defines the playfield size in scene units.
type SceneConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Motion holds the kinematic tuning shared by players and enemies.
type Motion struct {
	MaxSpeed          float64 `yaml:"max_speed"`
	Acceleration      float64 `yaml:"acceleration"`
	FrictionAmplifier float64 `yaml:"friction_amplifier"`
	MinSpeedThreshold float64 `yaml:"min_speed_threshold"`
	Size              float64 `yaml:"size"`
	TrailAmount       int     `yaml:"trail_amount"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Motion `yaml:",inline"`
	HP     int    `yaml:"hp"`
	MaxHP  int    `yaml:"max_hp"`
	Spawn  string `yaml:"spawn"` // center, topleft, topright, bottomleft, bottomright, random
}

// EnemyConfig defines pursuit enemy parameters.
type EnemyConfig struct {
	Motion       `yaml:",inline"`
	ReevaluateMS int     `yaml:"reevaluate_ms"` // AI re-evaluation period
	TTLMS        int     `yaml:"ttl_ms"`        // Lifespan before self-removal
	Wander       float64 `yaml:"wander"`        // Max random noise per axis
}

// GameConfig defines wave and scoring parameters.
type GameConfig struct {
	WaveCooldownMS   int     `yaml:"wave_cooldown_ms"`
	FirstWaveDelayMS int     `yaml:"first_wave_delay_ms"`
	WarningMS        int     `yaml:"warning_ms"`
	InitialEnemies   int     `yaml:"initial_enemies"`
	InitialWave      int     `yaml:"initial_wave"` // Index of the first spawn pattern
	ScoreTickMS      int     `yaml:"score_tick_ms"`
	ScoreStep        float64 `yaml:"score_step"`
	DamageCooldownMS int     `yaml:"damage_cooldown_ms"` // Invulnerability after a hit, 0 hits on every poll
}

// InputConfig defines input polling.
type InputConfig struct {
	PollMS int `yaml:"poll_ms"`
}

// Reevaluate returns the AI re-evaluation period.
func (e EnemyConfig) Reevaluate() time.Duration { return ms(e.ReevaluateMS) }

// TTL returns the enemy lifespan.
func (e EnemyConfig) TTL() time.Duration { return ms(e.TTLMS) }

// WaveCooldown returns the period between waves.
func (g GameConfig) WaveCooldown() time.Duration { return ms(g.WaveCooldownMS) }

// FirstWaveDelay returns the delay before the first wave.
func (g GameConfig) FirstWaveDelay() time.Duration { return ms(g.FirstWaveDelayMS) }

// Warning returns how long spawn markers stay up before enemies appear.
func (g GameConfig) Warning() time.Duration { return ms(g.WarningMS) }

// ScoreTick returns the score accrual period.
func (g GameConfig) ScoreTick() time.Duration { return ms(g.ScoreTickMS) }

// DamageCooldown returns how long the player is immune after losing a hit point.
func (g GameConfig) DamageCooldown() time.Duration { return ms(g.DamageCooldownMS) }

// Poll returns the input poll period.
func (i InputConfig) Poll() time.Duration { return ms(i.PollMS) }

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// Validate checks that the configuration describes a playable game.
func (c DodgeConfig) Validate() error {
	var errs []error

	if !finite(c.Scene.Width, c.Scene.Height) || c.Scene.Width <= 0 || c.Scene.Height <= 0 {
		errs = append(errs, fmt.Errorf("scene size must be positive, got %vx%v", c.Scene.Width, c.Scene.Height))
	}
	errs = append(errs, c.Player.Motion.validate("player"), c.Enemy.Motion.validate("enemy"))

	if c.Player.MaxHP <= 0 {
		errs = append(errs, fmt.Errorf("player.max_hp must be positive, got %d", c.Player.MaxHP))
	}
	if c.Player.HP <= 0 || c.Player.HP > c.Player.MaxHP {
		errs = append(errs, fmt.Errorf("player.hp must be in [1, %d], got %d", c.Player.MaxHP, c.Player.HP))
	}
	if c.Player.Size >= c.Scene.Width || c.Player.Size >= c.Scene.Height {
		errs = append(errs, errors.New("player does not fit into the scene"))
	}
	if c.Enemy.ReevaluateMS <= 0 || c.Enemy.TTLMS <= 0 {
		errs = append(errs, errors.New("enemy.reevaluate_ms and enemy.ttl_ms must be positive"))
	}
	if !finite(c.Enemy.Wander) || c.Enemy.Wander < 0 {
		errs = append(errs, fmt.Errorf("enemy.wander must not be negative, got %v", c.Enemy.Wander))
	}
	if c.Game.WaveCooldownMS <= 0 || c.Game.ScoreTickMS <= 0 || c.Input.PollMS <= 0 {
		errs = append(errs, errors.New("wave_cooldown_ms, score_tick_ms and poll_ms must be positive"))
	}
	if c.Game.WarningMS < 0 || c.Game.FirstWaveDelayMS < 0 || c.Game.DamageCooldownMS < 0 {
		errs = append(errs, errors.New("warning_ms, first_wave_delay_ms and damage_cooldown_ms must not be negative"))
	}
	if !finite(c.Game.ScoreStep) || c.Game.ScoreStep < 0 {
		errs = append(errs, fmt.Errorf("game.score_step must be a finite non-negative number, got %v", c.Game.ScoreStep))
	}
	if c.Game.InitialEnemies < 1 {
		errs = append(errs, fmt.Errorf("game.initial_enemies must be at least 1, got %d", c.Game.InitialEnemies))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

func (m Motion) validate(who string) error {
	if !finite(m.MaxSpeed, m.Acceleration, m.FrictionAmplifier, m.MinSpeedThreshold, m.Size) {
		return fmt.Errorf("%s: motion values must be finite numbers", who)
	}
	if m.MaxSpeed <= 0 || m.Acceleration <= 0 || m.FrictionAmplifier <= 0 {
		return fmt.Errorf("%s: max_speed, acceleration and friction_amplifier must be positive", who)
	}
	if m.Size <= 0 {
		return fmt.Errorf("%s: size must be positive, got %v", who, m.Size)
	}
	if m.MinSpeedThreshold < 0 || m.TrailAmount < 0 {
		return fmt.Errorf("%s: min_speed_threshold and trail_amount must not be negative", who)
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
