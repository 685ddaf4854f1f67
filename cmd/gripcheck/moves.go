package main

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/spf13/cobra"

	"github.com/milk9111/gripclimb/climb"
	"github.com/milk9111/gripclimb/levels"
)

var (
	flagFrom    string
	flagShuffle bool
)

var movesCmd = &cobra.Command{
	Use:   "moves <level>",
	Short: "Show the candidate move in each direction from a square",
	Long: `Resolves the four candidate moves from the square centred on --from,
or on the level's spawn when --from is omitted. With --shuffle, directions
with no candidate show the trailing-edge shuffle the four-button scheme
allows.

Examples:
  gripcheck moves chimney --from 0.125,0.125
  gripcheck moves tutorial --shuffle`,
	Args: cobra.ExactArgs(1),
	RunE: runMoves,
}

func init() {
	movesCmd.Flags().StringVar(&flagFrom, "from", "", "Square center as x,y (default: level spawn)")
	movesCmd.Flags().BoolVar(&flagShuffle, "shuffle", false, "Include four-button shuffles")
}

// squareFrom resolves a --from style flag to a connectible square.
func squareFrom(lvl *levels.Level, pf *climb.Pathfinder, raw string) (climb.Square, cp.Vector, error) {
	at := lvl.Spawn
	if raw != "" {
		p, err := parsePoint(raw)
		if err != nil {
			return climb.Square{}, cp.Vector{}, err
		}
		at = p
	}
	sq := pf.SquareAt(at)
	if sq.Empty() {
		return climb.Square{}, at, fmt.Errorf("level %s: no connectible square at %s", lvl.Name, formatPoint(at))
	}
	return sq, at, nil
}

func runMoves(cmd *cobra.Command, args []string) error {
	lvl, err := loadLevel(args[0])
	if err != nil {
		return err
	}
	pf, err := pathfinderFor(lvl)
	if err != nil {
		return err
	}
	current, at, err := squareFrom(lvl, pf, flagFrom)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "From %s: %s\n\n", formatPoint(at), current)
	fmt.Fprintf(out, "  %-5s  %-8s  %-12s  %s\n", "Dir", "Kind", "Target", "Grips")
	fmt.Fprintf(out, "  %-5s  %-8s  %-12s  %s\n", "---", "----", "------", "-----")
	for _, m := range pf.Candidates(current) {
		if flagShuffle && !m.Valid() {
			m = pf.ShuffleCandidate(current, m.Direction)
		}
		target := "-"
		grips := 0
		if center, ok := m.Target.Center(lvl.Geometry); ok {
			target = formatPoint(center)
			grips = m.Target.Count()
		}
		fmt.Fprintf(out, "  %-5s  %-8s  %-12s  %d\n", m.Direction, moveKind(m), target, grips)
	}
	return nil
}
