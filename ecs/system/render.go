package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gripclimb/climb"
	"github.com/milk9111/gripclimb/common"
	"github.com/milk9111/gripclimb/ecs"
	"github.com/milk9111/gripclimb/ecs/component"
	"golang.org/x/image/colornames"
)

const defaultZoom = 160.0

// RenderSystem draws the wall, the climber and the HUD. All drawing happens
// in Draw; Update is a no-op so the system can sit in the normal schedule.
type RenderSystem struct {
	Debug bool
}

func NewRenderSystem(debug bool) *RenderSystem {
	return &RenderSystem{Debug: debug}
}

func (r *RenderSystem) Update(*ecs.World) {}

type view struct {
	cam    cp.Vector
	zoom   float64
	width  int
	height int
}

func (v view) point(p cp.Vector) (float32, float32) {
	x, y := WorldToScreen(p, v.cam, v.zoom, v.width, v.height)
	return float32(x), float32(y)
}

func (v view) length(l float64) float32 {
	return float32(l * v.zoom)
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	rt := levelRuntime(w)
	if rt == nil || rt.Level == nil {
		ebitenutil.DebugPrint(screen, "no level loaded")
		return
	}

	b := screen.Bounds()
	v := view{zoom: defaultZoom, width: b.Dx(), height: b.Dy()}
	if camEntity, ok := w.First(component.CameraComponent.Kind().ID()); ok {
		if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok && cam.Zoom > 0 {
			v.zoom = cam.Zoom
		}
		if t, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
			v.cam = t.Vector()
		}
	}

	geom := rt.Level.Geometry
	if rt.Level.HasGoal {
		x, y := v.point(rt.Level.Goal.Add(cp.Vector{X: -geom.Spacing / 2, Y: geom.Spacing / 2}))
		size := v.length(geom.Spacing)
		vector.FillRect(screen, x, y, size, size, color.NRGBA{R: 0x3c, G: 0xb3, B: 0x71, A: 0x50}, false)
		vector.StrokeRect(screen, x, y, size, size, 2, colornames.Mediumseagreen, false)
	}

	for _, g := range rt.Level.Grips {
		drawGrip(screen, v, geom, g)
	}

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, p *component.Pickup, t *component.Transform) {
			bob := math.Sin(float64(rt.Frames)*0.05+p.BobPhase) * geom.Spacing * 0.1
			x, y := v.point(t.Vector().Add(cp.Vector{Y: bob}))
			clr := colornames.Orange
			if !p.Edible {
				clr = colornames.Skyblue
			}
			vector.FillCircle(screen, x, y, v.length(geom.Spacing*0.15), clr, true)
			vector.StrokeCircle(screen, x, y, v.length(p.Radius), 1, color.NRGBA{R: clr.R, G: clr.G, B: clr.B, A: 0x60}, true)
		})

	ecs.ForEach2(w, component.ClimberComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, c *component.Climber, t *component.Transform) {
			r.drawClimber(w, screen, v, geom, e, c, t)
		})

	r.drawHUD(w, screen, rt)
}

func drawGrip(screen *ebiten.Image, v view, geom climb.Geometry, g *climb.Grip) {
	x, y := v.point(g.Position())
	half := v.length(geom.HalfWidth * 1.6)
	clr := qualityColor(g.Quality())
	switch g.Type() {
	case climb.GripPeg:
		vector.FillCircle(screen, x, y, half, clr, true)
	case climb.GripLadder:
		vector.FillRect(screen, x-half*1.5, y-half/2, half*3, half, clr, false)
	default:
		vector.FillRect(screen, x-half, y-half, half*2, half*2, clr, false)
	}
}

// qualityColor blends from red for the worst grips to green for the best.
func qualityColor(q int) color.NRGBA {
	t := common.Clamp(float64(q-climb.MinQuality)/float64(climb.MaxQuality-climb.MinQuality), 0, 1)
	lo, hi := colornames.Firebrick, colornames.Limegreen
	return color.NRGBA{
		R: uint8(common.Lerp(float64(lo.R), float64(hi.R), t)),
		G: uint8(common.Lerp(float64(lo.G), float64(hi.G), t)),
		B: uint8(common.Lerp(float64(lo.B), float64(hi.B), t)),
		A: 0xff,
	}
}

func reticleColor(s component.ReticleState) color.Color {
	switch s {
	case component.ReticleHighlighted:
		return colornames.Gold
	case component.ReticleSelected:
		return colornames.White
	case component.ReticleGreyed:
		return colornames.Gray
	case component.ReticleErrored:
		return colornames.Red
	}
	return color.Transparent
}

func (r *RenderSystem) drawClimber(w *ecs.World, screen *ebiten.Image, v view, geom climb.Geometry, e ecs.Entity, c *component.Climber, t *component.Transform) {
	ctrl := c.Controller
	if ctrl != nil {
		if sq := ctrl.Current(); !sq.Empty() {
			if ul, ok := sq.CornerPosition(climb.UpLeft, geom); ok {
				x, y := v.point(ul)
				size := v.length(geom.Spacing)
				vector.StrokeRect(screen, x, y, size, size, 1, colornames.Lightgrey, false)
			}
		}
		if m, p, ok := ctrl.Transition(); ok {
			if g := m.ConnectingGrip(); g != nil {
				x0, y0 := v.point(c.HandPoint(t.Vector(), m.Side))
				x1, y1 := v.point(g.Position())
				clr := colornames.Lightgrey
				if m.JumpRequired {
					clr = colornames.Gold
				}
				vector.StrokeLine(screen, x0, y0, x1, y1, float32(1+2*(1-p)), clr, true)
			}
		}
	}

	body := geom.Spacing * 0.6
	x, y := v.point(t.Vector().Add(cp.Vector{X: -body / 4, Y: body / 2}))
	bodyColor := colornames.Whitesmoke
	if c.State() == climb.Detached {
		bodyColor = colornames.Salmon
	}
	vector.FillRect(screen, x, y, v.length(body/2), v.length(body), bodyColor, false)
	for _, hand := range [2]climb.Side{climb.SideLeft, climb.SideRight} {
		hx, hy := v.point(c.HandPoint(t.Vector(), hand))
		vector.FillCircle(screen, hx, hy, v.length(geom.HalfWidth), bodyColor, true)
	}

	if rets, ok := ecs.Get(w, e, component.ReticlesComponent.Kind()); ok {
		for _, ret := range rets.Sides {
			if ret.State == component.ReticleHidden {
				continue
			}
			rx, ry := v.point(ret.Position)
			width := float32(2)
			if ret.Jump {
				width = 3
			}
			vector.StrokeCircle(screen, rx, ry, v.length(geom.HalfWidth*3), width, reticleColor(ret.State), true)
		}
	}

	if r.Debug && ctrl != nil {
		for _, m := range ctrl.Candidates() {
			if !m.Valid() {
				continue
			}
			center, _ := m.Target.Center(geom)
			cx, cy := v.point(center)
			clr := colornames.Deepskyblue
			if m.JumpRequired {
				clr = colornames.Gold
			}
			vector.StrokeCircle(screen, cx, cy, 3, 1, clr, true)
		}
	}
}

func (r *RenderSystem) drawHUD(w *ecs.World, screen *ebiten.Image, rt *component.LevelRuntime) {
	const (
		barX, barY = 12, 28
		barW, barH = 200, 12
	)
	player, ok := w.First(component.PlayerTagComponent.Kind().ID())
	state := "-"
	if ok {
		if gs, ok := ecs.Get(w, player, component.GripStaminaComponent.Kind()); ok && gs.Level() != nil {
			frac := float32(gs.Level().Fraction())
			vector.FillRect(screen, barX, barY, barW, barH, color.NRGBA{A: 0x80}, false)
			clr := colornames.Limegreen
			if frac < 0.25 {
				clr = colornames.Orangered
			}
			vector.FillRect(screen, barX, barY, barW*frac, barH, clr, false)
			vector.StrokeRect(screen, barX, barY, barW, barH, 1, colornames.White, false)
		}
		if c, ok := ecs.Get(w, player, component.ClimberComponent.Kind()); ok {
			state = c.State().String()
		}
	}

	msg := fmt.Sprintf("%s  [%s]", rt.Level.Name, state)
	if rt.Completed {
		msg += "  GOAL!"
	}
	ebitenutil.DebugPrintAt(screen, msg, barX, 8)

	if r.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f  frames: %d", ebiten.ActualFPS(), rt.Frames), barX, barY+barH+6)
	}
}
