// gripcheck inspects climbing levels and recorded sessions from the terminal.
//
// Usage:
//
//	gripcheck list                                - List the bundled levels
//	gripcheck inspect <level>                     - Draw the grip map and count squares and jumps
//	gripcheck moves <level> --from x,y            - Show the four candidate moves from a square
//	gripcheck route <level> --from x,y --to x,y   - Plan a route between two squares
//	gripcheck sessions [level]                    - Show recorded climb sessions
//
// Global flags:
//
//	--levels-dir <dir>  - Directory searched for level overrides (default: levels)
//	--db <path>         - Session database path (default: ~/.gripclimb/sessions.db)
//	--debug             - Verbose logging
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/milk9111/gripclimb/levels"
)

var (
	flagLevelsDir string
	flagDBPath    string
	flagDebug     bool

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "gripcheck"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gripcheck",
	Short: "Inspect grip levels and climb sessions",
	Long: `gripcheck loads climbing levels the same way the game does and reports
what a climber can reach from where.

Examples:
  gripcheck list
  gripcheck inspect tutorial
  gripcheck moves chimney --from 0.125,0.125
  gripcheck route tutorial
  gripcheck sessions tutorial`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
		levels.Dir = flagLevelsDir
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "levels", "Directory searched for level overrides")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gripclimb/sessions.db", "Path to the session database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(movesCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(sessionsCmd)
}

// loadLevel accepts a bundled level name or a path to a level file.
func loadLevel(arg string) (*levels.Level, error) {
	ext := strings.ToLower(filepath.Ext(arg))
	if ext == ".yaml" || ext == ".yml" {
		if _, err := os.Stat(arg); err == nil {
			logger.Debug("loading level file", "path", arg)
			return levels.LoadFile(arg)
		}
	}
	logger.Debug("loading level", "name", arg, "dir", levels.Dir)
	return levels.Load(arg)
}
