package main

import (
	"errors"
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/gripclimb/ecs/entity"
	"github.com/milk9111/gripclimb/ecs/system"
	"github.com/milk9111/gripclimb/prefabs"
	"github.com/milk9111/gripclimb/storage"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level name in levels/ (basename, .yaml optional)")
	dbPath := flag.String("db", "~/.gripclimb/sessions.db", "session database path (empty disables recording)")
	watch := flag.Bool("watch", false, "reload prefabs and levels when they change on disk")
	index := flag.String("index", "grid", "grip index backing the pathfinder (grid or space)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "gripclimb"})
	if *debug {
		log.SetLevel(log.DebugLevel)
		logger.SetLevel(log.DebugLevel)
	}

	kind, err := entity.ParseIndexKind(*index)
	if err != nil {
		logger.Fatal("bad -index", "err", err)
	}

	var sessions system.SessionStore
	if *dbPath != "" {
		store, err := storage.Open(*dbPath)
		if err != nil {
			logger.Warn("could not open session database", "path", *dbPath, "err", err)
		} else {
			defer store.Close()
			sessions = store
		}
	}

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		logger.Fatal("load game spec", "err", err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(spec.ScreenWidth, spec.ScreenHeight)
	ebiten.SetWindowTitle(spec.Title)

	game, err := NewGame(GameOptions{
		Spec:     spec,
		Level:    *levelName,
		Debug:    *debug,
		Index:    kind,
		Sessions: sessions,
		Watch:    *watch,
		Logger:   logger,
	})
	if err != nil {
		logger.Fatal("start game", "err", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game stopped", "err", err)
	}
}
