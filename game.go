package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/gripclimb/ecs"
	"github.com/milk9111/gripclimb/ecs/component"
	"github.com/milk9111/gripclimb/ecs/entity"
	"github.com/milk9111/gripclimb/ecs/system"
	"github.com/milk9111/gripclimb/levels"
	"github.com/milk9111/gripclimb/prefabs"
)

// advanceDelay is how long the goal is shown before the next level loads.
const advanceDelay = 90

type GameOptions struct {
	Spec     prefabs.GameSpec
	Level    string
	Debug    bool
	Index    entity.IndexKind
	Sessions system.SessionStore
	Watch    bool
	Logger   *log.Logger
}

type Game struct {
	opts   GameOptions
	logger *log.Logger

	world   *ecs.World
	level   *levels.Level
	player  ecs.Entity
	session *system.SessionSystem
	watcher *prefabs.Watcher

	paused     bool
	quit       bool
	completeAt int
	pauseUI    *ebitenui.UI
}

func NewGame(opts GameOptions) (*Game, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	g := &Game{
		opts:    opts,
		logger:  opts.Logger,
		session: system.NewSessionSystem(opts.Sessions),
	}

	name := opts.Level
	if name == "" && len(opts.Spec.Levels) > 0 {
		name = opts.Spec.Levels[0]
	}
	if name == "" {
		return nil, fmt.Errorf("game: no level to load")
	}
	if err := g.loadLevel(name); err != nil {
		return nil, err
	}

	if opts.Watch {
		var dirs []string
		for _, dir := range []string{prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"), levels.Dir} {
			if info, err := os.Stat(dir); err == nil && info.IsDir() {
				dirs = append(dirs, dir)
			}
		}
		w, err := prefabs.NewWatcher(dirs...)
		if err != nil {
			g.logger.Warn("hot reload disabled", "err", err)
		} else {
			g.watcher = w
		}
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

// loadLevel builds a fresh world for the named level.
func (g *Game) loadLevel(name string) error {
	lvl, err := levels.Load(name)
	if err != nil {
		return err
	}
	return g.loadWorld(lvl)
}

func (g *Game) loadWorld(lvl *levels.Level) error {
	if g.world != nil {
		g.session.Finish(g.world)
	}

	w := ecs.NewWorld()
	player, err := entity.LoadLevelToWorld(w, lvl, g.opts.Index)
	if err != nil {
		return fmt.Errorf("game: load %s: %w", lvl.Name, err)
	}

	w.AddSystem(system.NewInputSystem())
	w.AddSystem(system.NewClimbingSystem())
	w.AddSystem(system.NewStaminaSystem())
	w.AddSystem(system.NewPickupSystem())
	w.AddSystem(system.NewReticleSystem())
	w.AddSystem(system.NewSoundSystem())
	w.AddSystem(g.session)
	w.AddSystem(system.NewCameraSystem())
	w.AddSystem(system.NewRenderSystem(g.opts.Debug))

	g.world = w
	g.level = lvl
	g.player = player
	g.completeAt = 0
	g.logger.Info("level loaded", "name", lvl.Name, "grips", len(lvl.Grips))
	return nil
}

// nextLevel is the level after the current one in the game's level list.
func (g *Game) nextLevel() (string, bool) {
	i := slices.Index(g.opts.Spec.Levels, g.level.Name)
	if i < 0 || i+1 >= len(g.opts.Spec.Levels) {
		return "", false
	}
	return g.opts.Spec.Levels[i+1], true
}

func (g *Game) switchLevel(name string) {
	if err := g.loadLevel(name); err != nil {
		g.logger.Error("switch level", "name", name, "err", err)
		return
	}
	g.paused = false
}

func (g *Game) restart() {
	g.switchLevel(g.level.Name)
}

func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	changed := g.watcher.Drain()
	if len(changed) == 0 {
		return
	}

	rebuild := false
	for _, path := range changed {
		if !prefabs.IsLevelFile(path) {
			g.logger.Debug("prefab changed", "path", path)
			rebuild = true
			continue
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if name != g.level.Name {
			continue
		}
		lvl, err := levels.LoadFile(path)
		if err != nil {
			g.logger.Error("reload level", "path", path, "err", err)
			continue
		}
		g.session.Finish(g.world)
		if err := entity.ReloadLevel(g.world, lvl, g.opts.Index); err != nil {
			g.logger.Error("reload level", "path", path, "err", err)
			continue
		}
		g.level = lvl
		g.logger.Info("level reloaded", "name", lvl.Name)
	}
	if rebuild {
		if err := g.loadWorld(g.level); err != nil {
			g.logger.Error("rebuild world", "err", err)
		}
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.reloadChanged()

	if g.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.paused = false
			return nil
		}
		g.pauseUI.Update()
		return nil
	}

	g.world.Update()

	if in, ok := ecs.Get(g.world, g.player, component.InputComponent.Kind()); ok && in.Pause {
		g.paused = true
		return nil
	}

	if rt, ok := g.runtime(); ok && rt.Completed {
		g.completeAt++
		if g.completeAt >= advanceDelay {
			if next, ok := g.nextLevel(); ok {
				g.switchLevel(next)
			}
		}
	}
	return nil
}

func (g *Game) runtime() (*component.LevelRuntime, bool) {
	e, ok := g.world.First(component.LevelRuntimeComponent.Kind().ID())
	if !ok {
		return nil, false
	}
	return ecs.Get(g.world, e, component.LevelRuntimeComponent.Kind())
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// Close ends the open session and stops the watcher.
func (g *Game) Close() {
	if g.world != nil {
		g.session.Finish(g.world)
	}
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.opts.Spec.ScreenWidth), float64(g.opts.Spec.ScreenHeight)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
