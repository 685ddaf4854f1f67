package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/gripclimb/climb"
	"github.com/milk9111/gripclimb/levels"
)

var flagSpaceIndex bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <level>",
	Short: "Draw a level's grip map and count what it offers",
	Long: `Draws the grip map coloured by quality and counts the connectible
squares, the moves that need a jump and the squares with no way out.

Examples:
  gripcheck inspect tutorial
  gripcheck inspect ./levels/custom.yaml --space`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	for _, c := range []*cobra.Command{inspectCmd, movesCmd, routeCmd} {
		c.Flags().BoolVar(&flagSpaceIndex, "space", false, "Use the physics-space grip index instead of the grid hash")
	}
}

func pathfinderFor(lvl *levels.Level) (*climb.Pathfinder, error) {
	if !flagSpaceIndex {
		return climb.NewPathfinder(lvl.Geometry, lvl.Index()), nil
	}
	space, err := lvl.SpaceIndex()
	if err != nil {
		return nil, fmt.Errorf("level %s: space index: %w", lvl.Name, err)
	}
	return climb.NewPathfinder(lvl.Geometry, space), nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	lvl, err := loadLevel(args[0])
	if err != nil {
		return err
	}
	pf, err := pathfinderFor(lvl)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render("Level "+lvl.Name))
	fmt.Fprintln(out, renderGrid(gridRows(lvl, nil)))

	s := summarize(lvl, pf)
	logger.Debug("summarized level", "name", lvl.Name, "squares", s.Squares)
	fmt.Fprintf(out, "  spacing      %g (half width %g)\n", lvl.Geometry.Spacing, lvl.Geometry.HalfWidth)
	fmt.Fprintf(out, "  spawn        %s\n", formatPoint(lvl.Spawn))
	if lvl.HasGoal {
		fmt.Fprintf(out, "  goal         %s\n", formatPoint(lvl.Goal))
	}
	fmt.Fprintf(out, "  grips        %d\n", s.Grips)
	fmt.Fprintf(out, "  squares      %d\n", s.Squares)
	fmt.Fprintf(out, "  jump links   %d\n", s.JumpLinks)
	fmt.Fprintf(out, "  dead ends    %d\n", s.DeadEnds)
	fmt.Fprintf(out, "  pickups      %d\n", len(lvl.Pickups))
	return nil
}
