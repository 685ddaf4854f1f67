package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/gripclimb/levels"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the bundled levels",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	names := levels.Names()
	if len(names) == 0 {
		fmt.Fprintln(out, "No levels bundled.")
		return nil
	}

	maxName := len("Level")
	for _, n := range names {
		maxName = max(maxName, len(n))
	}

	fmt.Fprintf(out, "  %-*s  %5s  %s\n", maxName, "Level", "Grips", "Goal")
	fmt.Fprintf(out, "  %-*s  %5s  %s\n", maxName, "-----", "-----", "----")
	for _, n := range names {
		lvl, err := levels.Load(n)
		if err != nil {
			logger.Warn("skipping level", "name", n, "error", err)
			continue
		}
		goal := "-"
		if lvl.HasGoal {
			goal = formatPoint(lvl.Goal)
		}
		fmt.Fprintf(out, "  %-*s  %5d  %s\n", maxName, n, len(lvl.Grips), goal)
	}
	return nil
}
