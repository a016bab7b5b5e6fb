package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/square-dodge/internal/core"
	"github.com/vovakirdan/square-dodge/internal/session"
	"github.com/vovakirdan/square-dodge/internal/storage"
)

var (
	flagDuration time.Duration
	flagRealtime bool
	flagWander   bool
	flagSave     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless and log events",
	Long: `Run a game without a terminal UI. Waves, hits and deaths are logged to
stderr. By default the clock runs as fast as possible; --realtime paces it
with the wall clock.

The player either stands still or, with --wander, picks a new random
direction every second.

Examples:
  dodge simulate
  dodge simulate --duration 2m --wander --seed 42
  dodge simulate --realtime --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().DurationVar(&flagDuration, "duration", 30*time.Second, "Game time to simulate")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace the game clock with the wall clock")
	simulateCmd.Flags().BoolVar(&flagWander, "wander", false, "Move the player randomly")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Save a new highscore to the database")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "simulate")
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var store session.HighScoreStore = &session.MemoryStore{}
	if flagSave {
		db, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("cannot open highscore database: %w", err)
		}
		defer db.Close()
		store = db
	}

	sess, err := session.New(cfg,
		session.WithLogger(logger.With("component", "session")),
		session.WithStore(store),
		session.WithSink(eventLogger(logger)),
		session.WithSeed(seed),
	)
	if err != nil {
		return err
	}
	if err := sess.Start(); err != nil {
		return err
	}
	defer sess.Close()

	logger.Info("simulating", "duration", flagDuration, "seed", seed, "realtime", flagRealtime, "wander", flagWander)

	frame := time.Second / time.Duration(max(1, flagFPS))
	wander := newWanderer(seed, flagWander)

	if flagRealtime {
		err = simulateRealtime(cmd.Context(), sess, frame, wander)
	} else {
		simulateFast(sess, frame, wander)
	}
	if err != nil {
		return err
	}

	report(logger, sess.Snapshot())
	return nil
}

func simulateFast(sess *session.Session, frame time.Duration, w *wanderer) {
	for elapsed := time.Duration(0); elapsed < flagDuration; elapsed += frame {
		sess.SetInput(w.input(elapsed))
		sess.Advance(frame)
	}
}

func simulateRealtime(parent context.Context, sess *session.Session, frame time.Duration, w *wanderer) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, flagDuration)
	defer cancel()

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		start := time.Now()
		for {
			sess.SetInput(w.input(time.Since(start)))
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	err := sess.Run(ctx, frame)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func report(logger *log.Logger, snap session.Snapshot) {
	h := snap.HUD()
	logger.Info("done",
		"elapsed", snap.Elapsed,
		"waves", snap.Waves,
		"hp", h.HP,
		"enemies", len(snap.Enemies),
		"score", snap.Score,
		"highscore", snap.HighScore)
}

// wanderer picks a random held direction once per game second.
type wanderer struct {
	enabled bool
	rng     *rand.Rand
	second  time.Duration
	dir     core.Vec
}

func newWanderer(seed int64, enabled bool) *wanderer {
	return &wanderer{
		enabled: enabled,
		rng:     rand.New(rand.NewSource(seed ^ 0x5eed)),
		second:  -1,
	}
}

func (w *wanderer) input(elapsed time.Duration) core.Input {
	if !w.enabled {
		return core.Input{}
	}
	if s := elapsed.Truncate(time.Second); s != w.second {
		w.second = s
		w.dir = core.V(float64(w.rng.Intn(3)-1), float64(w.rng.Intn(3)-1))
	}
	return core.Input{Dir: w.dir}
}
