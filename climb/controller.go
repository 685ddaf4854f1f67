package climb

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gripclimb/common"
)

type State int

const (
	Detached State = iota
	Stationary
	Transitioning
)

func (s State) String() string {
	switch s {
	case Detached:
		return "detached"
	case Stationary:
		return "stationary"
	case Transitioning:
		return "transitioning"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// CommitEdge selects which button edge commits a move.
type CommitEdge int

const (
	CommitOnPress CommitEdge = iota
	CommitOnRelease
)

func ParseCommitEdge(s string) (CommitEdge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "press":
		return CommitOnPress, nil
	case "release":
		return CommitOnRelease, nil
	}
	return CommitOnPress, fmt.Errorf("climb: unknown commit edge %q", s)
}

// Scheme selects the grip button layout.
type Scheme int

const (
	// SchemeTwoButton commits with a left and a right hand button.
	SchemeTwoButton Scheme = iota
	// SchemeFourButton adds up and down hand buttons for horizontal leans and
	// allows shuffling along a trailing edge, except upward.
	SchemeFourButton
)

func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "two_button":
		return SchemeTwoButton, nil
	case "four_button":
		return SchemeFourButton, nil
	}
	return SchemeTwoButton, fmt.Errorf("climb: unknown control scheme %q", s)
}

type ControllerConfig struct {
	LeanDeadzone     float64
	TransitionFrames int
	CommitOn         CommitEdge
	Scheme           Scheme
	AttachRadius     float64
}

func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{
		LeanDeadzone:     0.5,
		TransitionFrames: 12,
		CommitOn:         CommitOnPress,
		Scheme:           SchemeTwoButton,
		AttachRadius:     0.5,
	}
}

// SideButton returns the button that commits side s while leaning toward
// lean. In the four-button scheme horizontal moves use GripUp for the upper
// leading corner and GripDown for the lower one.
func (cfg ControllerConfig) SideButton(in Intent, lean Direction, s Side) Button {
	if cfg.Scheme == SchemeFourButton && lean.Horizontal() {
		upper := SideLeft
		if lean == Left {
			upper = SideRight
		}
		if s == upper {
			return in.GripUp
		}
		return in.GripDown
	}
	if s == SideLeft {
		return in.GripLeft
	}
	return in.GripRight
}

// Button is the per-tick state of one grip button.
type Button struct {
	Pressed  bool
	Released bool
	Held     bool
}

// Intent is the per-tick input sampled by the host.
type Intent struct {
	Lean      cp.Vector
	GripLeft  Button
	GripRight Button
	GripUp    Button
	GripDown  Button
	Dismount  bool
}

// Observer receives controller notifications. Callbacks run synchronously
// inside Update, Attach and Detach.
type Observer interface {
	CandidatesChanged(c *Controller, moves Moves)
	MoveCommitted(c *Controller, m Move)
	MoveCompleted(c *Controller, m Move)
}

// NopObserver can be embedded to implement only part of Observer.
type NopObserver struct{}

func (NopObserver) CandidatesChanged(*Controller, Moves) {}
func (NopObserver) MoveCommitted(*Controller, Move)      {}
func (NopObserver) MoveCompleted(*Controller, Move)      {}

type transition struct {
	move     Move
	from, to cp.Vector
	frame    int
}

// Controller drives one climber across the grid. It is not safe for
// concurrent use; the host calls Update once per tick.
type Controller struct {
	cfg        ControllerConfig
	finder     *Pathfinder
	obs        Observer
	state      State
	current    Square
	position   cp.Vector
	leaning    Direction
	candidates Moves
	transit    transition
}

func NewController(finder *Pathfinder, cfg ControllerConfig, obs Observer) *Controller {
	if obs == nil {
		obs = NopObserver{}
	}
	return &Controller{cfg: cfg, finder: finder, obs: obs}
}

func (c *Controller) Config() ControllerConfig {
	return c.cfg
}

func (c *Controller) SetConfig(cfg ControllerConfig) {
	c.cfg = cfg
}

func (c *Controller) Pathfinder() *Pathfinder {
	return c.finder
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Current() Square {
	return c.current
}

func (c *Controller) Position() cp.Vector {
	return c.position
}

// SetPosition moves a detached climber. It is ignored while climbing.
func (c *Controller) SetPosition(p cp.Vector) {
	if c.state == Detached {
		c.position = p
	}
}

func (c *Controller) Leaning() Direction {
	return c.leaning
}

func (c *Controller) Candidates() Moves {
	return c.candidates
}

// Transition returns the move in flight and its progress in [0, 1].
func (c *Controller) Transition() (Move, float64, bool) {
	if c.state != Transitioning {
		return Move{}, 0, false
	}
	return c.transit.move, c.progress(), true
}

func (c *Controller) progress() float64 {
	if c.cfg.TransitionFrames <= 0 {
		return 1
	}
	return common.Clamp(float64(c.transit.frame)/float64(c.cfg.TransitionFrames), 0, 1)
}

// Attach grabs the nearest grip to handPoint within AttachRadius. The right
// hand treats the grip as the upper right of its square, the left hand as the
// upper left. Attach fails unless the square holds the pathfinder's minimum
// number of grips.
func (c *Controller) Attach(handPoint cp.Vector, hand Side) bool {
	if c.state != Detached {
		return false
	}
	reg := c.finder.Registry
	g := reg.Nearest(handPoint, c.cfg.AttachRadius)
	if g == nil {
		return false
	}
	h := Right
	if hand == SideRight {
		h = Left
	}
	sq := c.finder.Geometry.PopulateFromGrip(reg, g, h, Down)
	if !c.finder.Connectible(sq) {
		return false
	}
	center, _ := sq.Center(c.finder.Geometry)
	c.position = center
	c.state = Stationary
	c.arrive(sq)
	return true
}

// Detach releases the grid. A move in flight is abandoned where it is.
func (c *Controller) Detach() {
	if c.state == Detached {
		return
	}
	c.state = Detached
	c.current = Square{}
	c.leaning = None
	c.transit = transition{}
	c.candidates = Moves{}
	c.obs.CandidatesChanged(c, c.candidates)
}

// Update advances the controller by one tick.
func (c *Controller) Update(in Intent) {
	if c.state == Detached {
		return
	}
	if in.Dismount {
		c.Detach()
		return
	}
	c.leaning = SnapCardinal(in.Lean, c.cfg.LeanDeadzone)
	if c.state == Transitioning {
		c.advance()
		return
	}
	if c.leaning == None {
		return
	}
	if side, ok := c.commitSide(in); ok {
		c.commit(c.leaning, side)
	}
}

func (c *Controller) edge(b Button) bool {
	if c.cfg.CommitOn == CommitOnRelease {
		return b.Released
	}
	return b.Pressed
}

func (c *Controller) commitSide(in Intent) (Side, bool) {
	first := SideLeft
	if c.cfg.Scheme == SchemeFourButton && c.leaning == Left {
		first = SideRight
	}
	for _, s := range [2]Side{first, first.Opposite()} {
		if c.edge(c.cfg.SideButton(in, c.leaning, s)) {
			return s, true
		}
	}
	return SideLeft, false
}

func (c *Controller) commit(d Direction, side Side) bool {
	m := c.candidates.For(d)
	if !m.Valid() {
		return false
	}
	m = m.WithSide(side)
	if m.ConnectingGrip() == nil {
		return false
	}
	to, _ := m.Target.Center(c.finder.Geometry)
	c.transit = transition{move: m, from: c.position, to: to}
	c.state = Transitioning
	c.obs.MoveCommitted(c, m)
	if c.cfg.TransitionFrames <= 0 {
		c.complete()
	}
	return true
}

func (c *Controller) advance() {
	c.transit.frame++
	c.position = common.LerpVector(c.transit.from, c.transit.to, c.progress())
	if c.transit.frame >= c.cfg.TransitionFrames {
		c.complete()
	}
}

func (c *Controller) complete() {
	m := c.transit.move
	c.position = c.transit.to
	c.transit = transition{}
	c.state = Stationary
	c.arrive(m.Target)
	c.obs.MoveCompleted(c, m)
}

func (c *Controller) arrive(sq Square) {
	c.current = sq
	c.candidates = c.finder.Candidates(sq)
	if c.cfg.Scheme == SchemeFourButton {
		for _, d := range Cardinals {
			if !c.candidates.For(d).Valid() {
				c.candidates[d.index()] = c.finder.ShuffleCandidate(sq, d)
			}
		}
	}
	c.obs.CandidatesChanged(c, c.candidates)
}
