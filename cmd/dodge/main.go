// dodge is a terminal square-dodging game: steer a square around the scene
// while waves of enemy squares chase it.
//
// Usage:
//
//	dodge play               - Play in the terminal
//	dodge simulate           - Run the game headless and log what happens
//	dodge scores             - Show the stored highscore
//	dodge config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible spawns
//	--db <path>           - Set database path (default: ~/.dodge/dodge.db)
//	--config <path>       - Load a custom config YAML
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/square-dodge/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge - keep your square away from the swarm",
	Long: `Dodge is a terminal game about a small square in a box. Enemy squares
arrive in waves, chase you and hurt on contact. Survive as long as you
can; your score grows faster with every wave.

Available commands:
  play      - Play in the terminal
  simulate  - Run the game headless and log events
  scores    - View or reset the highscore
  config    - Print the effective configuration

Examples:
  dodge play
  dodge play --difficulty hard
  dodge simulate --duration 1m --wander
  dodge scores --reset
  dodge config --config ./my-dodge.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to highscore database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
