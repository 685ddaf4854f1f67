package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/gripclimb/climb"
)

var (
	flagRouteFrom string
	flagTo        string
	flagMaxNodes  int
)

var routeCmd = &cobra.Command{
	Use:   "route <level>",
	Short: "Plan the cheapest route between two squares",
	Long: `Plans a route from --from (default: spawn) to --to (default: the
level's goal) and marks the grips it lands on.

Examples:
  gripcheck route tutorial
  gripcheck route chimney --from 0.125,0.125 --to 0.125,1.375`,
	Args: cobra.ExactArgs(1),
	RunE: runRoute,
}

func init() {
	routeCmd.Flags().StringVar(&flagRouteFrom, "from", "", "Start square center as x,y (default: level spawn)")
	routeCmd.Flags().StringVar(&flagTo, "to", "", "Goal as x,y (default: level goal)")
	routeCmd.Flags().IntVar(&flagMaxNodes, "max-nodes", 2000, "Maximum squares expanded")
}

func runRoute(cmd *cobra.Command, args []string) error {
	lvl, err := loadLevel(args[0])
	if err != nil {
		return err
	}
	pf, err := pathfinderFor(lvl)
	if err != nil {
		return err
	}
	start, at, err := squareFrom(lvl, pf, flagRouteFrom)
	if err != nil {
		return err
	}

	goal := lvl.Goal
	switch {
	case flagTo != "":
		if goal, err = parsePoint(flagTo); err != nil {
			return err
		}
	case !lvl.HasGoal:
		return fmt.Errorf("level %s has no goal; pass --to", lvl.Name)
	}

	route, ok := climb.PlanRoute(pf, start, goal, flagMaxNodes)
	logger.Debug("planned route", "level", lvl.Name, "found", ok, "moves", route.Len())
	if !ok {
		return fmt.Errorf("level %s: no route from %s to %s", lvl.Name, formatPoint(at), formatPoint(goal))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Route %s -> %s: %d moves, cost %d\n\n", formatPoint(at), formatPoint(goal), route.Len(), route.Cost)
	mark := make(map[int]bool)
	for i, m := range route.Moves {
		center, _ := m.Target.Center(lvl.Geometry)
		fmt.Fprintf(out, "  %2d. %-5s  %-8s  %s\n", i+1, m.Direction, moveKind(m), formatPoint(center))
		for _, g := range m.Target.Grips() {
			mark[g.ID()] = true
		}
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderGrid(gridRows(lvl, mark)))
	return nil
}
