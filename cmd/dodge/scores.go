package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/square-dodge/internal/storage"
)

var flagReset bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the stored highscore",
	Long: `Display the best score and when it was set.

Examples:
  dodge scores
  dodge scores --reset
  dodge scores --db ./dodge.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the stored highscore")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open highscore database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagReset {
		if err := store.ClearHighScore(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Highscore cleared.")
		return nil
	}

	entry, err := store.Entry()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Highscore - Dodge")
	fmt.Fprintln(out)
	if entry.UpdatedAt.IsZero() {
		fmt.Fprintln(out, "No highscore recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'dodge play' to set the first one!")
		return nil
	}
	fmt.Fprintf(out, "  %-6s  %.2f\n", "Score", entry.Score)
	fmt.Fprintf(out, "  %-6s  %s\n", "Date", entry.UpdatedAt.Format("2006-01-02 15:04"))
	return nil
}
