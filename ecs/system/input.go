package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gripclimb/climb"
	"github.com/milk9111/gripclimb/ecs"
	"github.com/milk9111/gripclimb/ecs/component"
)

type Action int

const (
	ActionGripLeft Action = iota
	ActionGripRight
	ActionGripUp
	ActionGripDown
	ActionDismount
	ActionPause
	ActionRestart
)

// InputSource is sampled once per frame by the input system.
type InputSource interface {
	Lean() cp.Vector
	Button(a Action) climb.Button
}

// Bindings maps actions to keys and standard gamepad buttons.
type Bindings struct {
	Keys    map[Action][]ebiten.Key
	Buttons map[Action][]ebiten.StandardGamepadButton
}

func DefaultBindings() Bindings {
	return Bindings{
		Keys: map[Action][]ebiten.Key{
			ActionGripLeft:  {ebiten.KeyJ},
			ActionGripRight: {ebiten.KeyL},
			ActionGripUp:    {ebiten.KeyI},
			ActionGripDown:  {ebiten.KeyK},
			ActionDismount:  {ebiten.KeySpace},
			ActionPause:     {ebiten.KeyEscape},
			ActionRestart:   {ebiten.KeyR},
		},
		Buttons: map[Action][]ebiten.StandardGamepadButton{
			ActionGripLeft:  {ebiten.StandardGamepadButtonFrontTopLeft},
			ActionGripRight: {ebiten.StandardGamepadButtonFrontTopRight},
			ActionGripUp:    {ebiten.StandardGamepadButtonLeftTop},
			ActionGripDown:  {ebiten.StandardGamepadButtonLeftBottom},
			ActionDismount:  {ebiten.StandardGamepadButtonRightBottom},
			ActionPause:     {ebiten.StandardGamepadButtonCenterRight},
			ActionRestart:   {ebiten.StandardGamepadButtonCenterLeft},
		},
	}
}

// EbitenSource reads the keyboard and the first connected gamepad.
type EbitenSource struct {
	Bindings      Bindings
	StickDeadzone float64
}

func NewEbitenSource() *EbitenSource {
	return &EbitenSource{Bindings: DefaultBindings(), StickDeadzone: 0.2}
}

func (s *EbitenSource) Lean() cp.Vector {
	lean := leanFromKeys(
		ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	)
	if id, ok := firstGamepad(); ok {
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		// Screen y grows downward, world y grows upward.
		y := -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(x, y) > s.StickDeadzone {
			lean = cp.Vector{X: x, Y: y}
		}
	}
	return lean
}

func (s *EbitenSource) Button(a Action) climb.Button {
	var b climb.Button
	for _, k := range s.Bindings.Keys[a] {
		b.Held = b.Held || ebiten.IsKeyPressed(k)
		b.Pressed = b.Pressed || inpututil.IsKeyJustPressed(k)
		b.Released = b.Released || inpututil.IsKeyJustReleased(k)
	}
	if id, ok := firstGamepad(); ok {
		for _, btn := range s.Bindings.Buttons[a] {
			b.Held = b.Held || ebiten.IsStandardGamepadButtonPressed(id, btn)
			b.Pressed = b.Pressed || inpututil.IsStandardGamepadButtonJustPressed(id, btn)
			b.Released = b.Released || inpututil.IsStandardGamepadButtonJustReleased(id, btn)
		}
	}
	return b
}

func firstGamepad() (ebiten.GamepadID, bool) {
	gamepads := ebiten.AppendGamepadIDs(nil)
	if len(gamepads) == 0 {
		return 0, false
	}
	return gamepads[0], true
}

func leanFromKeys(up, down, left, right bool) cp.Vector {
	var v cp.Vector
	if left {
		v.X -= 1
	}
	if right {
		v.X += 1
	}
	if up {
		v.Y += 1
	}
	if down {
		v.Y -= 1
	}
	return v
}

type InputSystem struct {
	Source InputSource
}

func NewInputSystem() *InputSystem {
	return &InputSystem{Source: NewEbitenSource()}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.Source == nil {
		return
	}

	src := i.Source
	intent := climb.Intent{
		Lean:      src.Lean(),
		GripLeft:  src.Button(ActionGripLeft),
		GripRight: src.Button(ActionGripRight),
		GripUp:    src.Button(ActionGripUp),
		GripDown:  src.Button(ActionGripDown),
		Dismount:  src.Button(ActionDismount).Pressed,
	}
	pause := src.Button(ActionPause).Pressed
	restart := src.Button(ActionRestart).Pressed

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.Intent = intent
		input.Pause = pause
		input.Restart = restart
	})
}
