package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/gripclimb/storage"
)

var flagLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions [level]",
	Short: "Show recorded climb sessions",
	Long: `Lists the most recent sessions, optionally for one level, and a
summary of that level's attempts.

Examples:
  gripcheck sessions
  gripcheck sessions tutorial --limit 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
}

func runSessions(cmd *cobra.Command, args []string) error {
	level := ""
	if len(args) == 1 {
		level = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening session database: %w", err)
	}
	defer store.Close()

	sessions, err := store.Sessions(level, flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-16s  %-10s  %5s  %5s  %7s  %s\n", "Started", "Level", "Moves", "Jumps", "Stamina", "Result")
	fmt.Fprintf(out, "  %-16s  %-10s  %5s  %5s  %7s  %s\n", "-------", "-----", "-----", "-----", "-------", "------")
	for _, s := range sessions {
		result := "open"
		switch {
		case s.ReachedGoal:
			result = "goal"
		case s.Finished:
			result = "gave up"
		}
		fmt.Fprintf(out, "  %-16s  %-10s  %5d  %5d  %7.1f  %s\n",
			s.StartedAt.Format("2006-01-02 15:04"), s.Level, s.Moves, s.Jumps, s.StaminaLeft, result)
	}

	if level == "" {
		return nil
	}
	stats, err := store.LevelStats(level)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s: %d/%d completed", level, stats.Completed, stats.Sessions)
	if stats.BestMoves > 0 {
		fmt.Fprintf(out, ", best %d moves", stats.BestMoves)
	}
	fmt.Fprintf(out, ", %.1f moves on average\n", stats.AvgMoves)
	return nil
}
