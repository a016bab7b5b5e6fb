package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/square-dodge/internal/config"
	"github.com/vovakirdan/square-dodge/internal/session"
)

// loadConfig resolves the config file, applies the difficulty preset and
// validates the result.
func loadConfig() (config.DodgeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the command logger writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// eventLogger logs session events. Moves are only logged at debug level.
func eventLogger(logger *log.Logger) session.Sink {
	return session.SinkFunc(func(ev session.Event) {
		switch ev.Type {
		case session.EventEntityMoved:
			return
		case session.EventWaveStarted:
			logger.Info("wave", "at", ev.At, "n", ev.Wave, "pattern", ev.Pattern, "enemies", len(ev.Points))
		case session.EventPlayerDamaged:
			logger.Debug("hit", "at", ev.At, "hp", ev.HP)
		case session.EventPlayerDied:
			logger.Info("died", "at", ev.At, "score", ev.Score)
		case session.EventHighScore:
			logger.Info("highscore", "score", ev.Score)
		default:
			logger.Debug(ev.Type.String(), "at", ev.At, "id", ev.EntityID, "kind", ev.Kind, "pos", ev.Pos)
		}
	})
}
