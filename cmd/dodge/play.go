package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/square-dodge/internal/config"
	"github.com/vovakirdan/square-dodge/internal/core"
	"github.com/vovakirdan/square-dodge/internal/platform/tui"
	"github.com/vovakirdan/square-dodge/internal/session"
	"github.com/vovakirdan/square-dodge/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD - Move (hold to accelerate)
  X           - Give up the current run
  R           - Restart (after the player died)
  ?           - Toggle help
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - One enemy per first wave, longer cooldown, slower enemies
  normal - Configured values
  hard   - Two extra enemies, shorter cooldown, half HP

Examples:
  dodge play                     # pick a difficulty first
  dodge play --difficulty easy
  dodge play --config ./my-dodge.yaml --log-file dodge.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the game, logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "dodge")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open highscore storage
	var store session.HighScoreStore = &session.MemoryStore{}
	db, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open highscore database: %v\n", err)
		logger.Warn("playing without persistent highscore", "error", err)
		// Continue with the in-memory store - game still works
	} else {
		defer db.Close()
		store = db
	}

	// Without --difficulty, let the player pick one
	if flagDifficulty == "" {
		best, _ := store.HighScore()
		preset, chosen, err := tui.RunDifficultySelector(rc, best)
		if err != nil {
			return err
		}
		if !chosen {
			return nil
		}
		config.ApplyPreset(&cfg, preset)
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger.Info("difficulty selected", "preset", preset)
	}

	return tui.Run(tui.Options{
		Config:  cfg,
		Store:   store,
		Logger:  logger.With("component", "session"),
		Runtime: rc,
		Sink:    eventLogger(logger.With("component", "events")),
	})
}
