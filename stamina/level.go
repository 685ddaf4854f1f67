// Package stamina models the climber's grip reserve: a bounded level that
// changes immediately or drains through rapid and slow increment pools.
package stamina

import "math"

// minimumError is the threshold below which pools and fractional remainders
// are treated as settled.
const minimumError = 0.01

type Config struct {
	Starting float64
	Max      float64
	// RapidSpeed and SlowSpeed are percentages of Max applied per second.
	RapidSpeed float64
	SlowSpeed  float64
}

func DefaultConfig() Config {
	return Config{Starting: 100, Max: 100, RapidSpeed: 40, SlowSpeed: 8}
}

type Level struct {
	cfg     Config
	current float64
	rapid   float64
	slow    float64
}

func NewLevel(cfg Config) *Level {
	if cfg.Max <= 0 {
		cfg.Max = DefaultConfig().Max
	}
	l := &Level{cfg: cfg}
	l.Reset()
	return l
}

// Reset restores the starting level and clears both pools.
func (l *Level) Reset() {
	l.current = math.Min(l.cfg.Starting, l.cfg.Max)
	l.rapid, l.slow = 0, 0
}

func (l *Level) Current() float64 {
	return l.current
}

func (l *Level) Max() float64 {
	return l.cfg.Max
}

// Fraction is the level as a share of Max in [0, 1].
func (l *Level) Fraction() float64 {
	return l.current / l.cfg.Max
}

func (l *Level) Empty() bool {
	return l.current <= 0
}

func (l *Level) Incrementing() bool {
	return l.rapid != 0 || l.slow != 0
}

func (l *Level) Pools() (rapid, slow float64) {
	return l.rapid, l.slow
}

func (l *Level) Immediate(delta float64) {
	l.current += delta
	l.keepInBounds()
}

func (l *Level) Rapid(delta float64) {
	l.rapid += delta
	l.keepInBounds()
}

func (l *Level) Slow(delta float64) {
	l.slow += delta
	l.keepInBounds()
}

// Update drains the pools into the level for dt seconds. An empty level is
// frozen until Reset or Immediate lifts it.
func (l *Level) Update(dt float64) {
	if l.current == 0 {
		return
	}
	if l.slow != 0 {
		l.run(&l.slow, l.cfg.SlowSpeed, dt)
	}
	if l.rapid != 0 {
		l.run(&l.rapid, l.cfg.RapidSpeed, dt)
	}
	l.keepInBounds()
	stabilize(&l.rapid)
	stabilize(&l.slow)
}

func (l *Level) run(pool *float64, speed, dt float64) {
	step := speed / 100 * l.cfg.Max * dt
	if *pool < 0 {
		step = -step
	}
	ending := false
	if math.Abs(step) > math.Abs(*pool) {
		step = *pool
		ending = true
	}
	*pool -= step
	l.current += step
	if ending {
		l.snap()
	}
}

// snap removes float drift once an increment finishes, in either direction.
func (l *Level) snap() {
	whole := math.Floor(l.current)
	switch frac := l.current - whole; {
	case frac < minimumError:
		l.current = whole
	case 1-frac < minimumError:
		l.current = whole + 1
	}
}

func (l *Level) keepInBounds() {
	if l.current <= 0 {
		l.current = 0
		l.rapid, l.slow = 0, 0
	}
	if l.current > l.cfg.Max {
		l.current = l.cfg.Max
		l.rapid, l.slow = 0, 0
	}
}

func stabilize(pool *float64) {
	if math.Abs(*pool) <= minimumError {
		*pool = 0
	}
}
