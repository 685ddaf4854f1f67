package stamina

import "github.com/milk9111/gripclimb/climb"

type DrainConfig struct {
	StaticPerSecond float64
	MoveModifier    float64
	JumpModifier    float64
	// DelayFrames postpones a move's drain after the move is committed.
	DelayFrames int
}

func DefaultDrainConfig() DrainConfig {
	return DrainConfig{StaticPerSecond: 1.5, MoveModifier: 1, JumpModifier: 2.5, DelayFrames: 6}
}

type pendingDrain struct {
	amount float64
	frames int
}

// Drainer charges a Level for holding on and for climbing.
type Drainer struct {
	cfg        DrainConfig
	policy     Policy
	level      *Level
	stationary bool
	pending    []pendingDrain
}

func NewDrainer(level *Level, cfg DrainConfig, policy Policy) *Drainer {
	if policy == nil {
		policy = FormulaPolicy{}
	}
	return &Drainer{cfg: cfg, policy: policy, level: level, stationary: true}
}

func (d *Drainer) Level() *Level {
	return d.level
}

func (d *Drainer) SetPolicy(p Policy) {
	if p == nil {
		p = FormulaPolicy{}
	}
	d.policy = p
}

func (d *Drainer) SetConfig(cfg DrainConfig) {
	d.cfg = cfg
}

// MoveCommitted prices m and schedules its drain. It returns the scheduled
// cost.
func (d *Drainer) MoveCommitted(m climb.Move) (float64, error) {
	d.stationary = false
	g := m.ConnectingGrip()
	if g == nil {
		return 0, nil
	}
	cost, err := d.policy.Cost(MoveCost{
		Quality:      g.Quality(),
		Jump:         m.JumpRequired,
		Steps:        m.JumpSteps,
		MoveModifier: d.cfg.MoveModifier,
		JumpModifier: d.cfg.JumpModifier,
	})
	if err != nil {
		return 0, err
	}
	d.pending = append(d.pending, pendingDrain{amount: -cost, frames: d.cfg.DelayFrames})
	return cost, nil
}

func (d *Drainer) MoveCompleted() {
	d.stationary = true
}

// Released drops scheduled drains after the climber lets go.
func (d *Drainer) Released() {
	d.stationary = true
	d.pending = d.pending[:0]
}

// Pickup applies a restorative amount: large amounts fill over time, small
// ones at once.
func (d *Drainer) Pickup(amount float64) {
	if amount > 1 {
		d.level.Rapid(amount)
		return
	}
	d.level.Immediate(amount)
}

// Tick advances one frame of dt seconds.
func (d *Drainer) Tick(dt float64, climbing bool) {
	if climbing && d.stationary {
		d.level.Immediate(-d.cfg.StaticPerSecond * dt)
	}
	kept := d.pending[:0]
	for _, p := range d.pending {
		if p.frames <= 0 {
			d.level.Rapid(p.amount)
			continue
		}
		p.frames--
		kept = append(kept, p)
	}
	d.pending = kept
	d.level.Update(dt)
}
