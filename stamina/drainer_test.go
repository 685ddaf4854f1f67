package stamina

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gripclimb/climb"
)

func moveOnto(t *testing.T, quality int, jump bool) climb.Move {
	t.Helper()
	g, err := climb.NewGrip(1, cp.Vector{}, quality, climb.GripSquare)
	if err != nil {
		t.Fatal(err)
	}
	return climb.Move{
		Direction:    climb.Up,
		Target:       climb.NewSquare(g, nil, nil, nil),
		Side:         climb.SideLeft,
		JumpRequired: jump,
		JumpSteps:    2,
	}
}

func TestFormulaPolicy(t *testing.T) {
	cases := []struct {
		name    string
		quality int
		jump    bool
		want    float64
	}{
		{"good_grip", 9, false, 2},
		{"bad_grip", 2, false, 16},
		{"bad_grip_jump", 2, true, 40},
		{"perfect", 10, true, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := FormulaPolicy{}.Cost(MoveCost{Quality: c.quality, Jump: c.jump, MoveModifier: 2, JumpModifier: 5})
			if err != nil || !approx(got, c.want) {
				t.Fatalf("cost = %v %v, want %v", got, err, c.want)
			}
		})
	}
}

func TestDrainerDelaysMoveDrain(t *testing.T) {
	level := NewLevel(Config{Starting: 100, Max: 100, RapidSpeed: 100, SlowSpeed: 10})
	d := NewDrainer(level, DrainConfig{MoveModifier: 1, JumpModifier: 3, DelayFrames: 2}, nil)

	cost, err := d.MoveCommitted(moveOnto(t, 4, false))
	if err != nil || !approx(cost, 6) {
		t.Fatalf("cost = %v %v", cost, err)
	}
	d.Tick(0, true)
	d.Tick(0, true)
	if rapid, _ := level.Pools(); rapid != 0 {
		t.Fatalf("drain applied before the delay")
	}
	d.Tick(0, true)
	if rapid, _ := level.Pools(); !approx(rapid, -6) {
		t.Fatalf("expected a -6 rapid pool, got %v", rapid)
	}
	d.MoveCompleted()
	d.Tick(1, false)
	if !approx(level.Current(), 94) {
		t.Fatalf("expected 94, got %v", level.Current())
	}
}

func TestDrainerStaticDrainOnlyWhileHolding(t *testing.T) {
	level := NewLevel(DefaultConfig())
	d := NewDrainer(level, DrainConfig{StaticPerSecond: 2}, FormulaPolicy{})
	d.Tick(0.5, false)
	if level.Current() != 100 {
		t.Fatalf("drained while not climbing")
	}
	d.Tick(0.5, true)
	if !approx(level.Current(), 99) {
		t.Fatalf("expected 99, got %v", level.Current())
	}
	if _, err := d.MoveCommitted(moveOnto(t, 10, false)); err != nil {
		t.Fatal(err)
	}
	d.Tick(0.5, true)
	if !approx(level.Current(), 99) {
		t.Fatalf("static drain during a move: %v", level.Current())
	}
}

func TestDrainerReleasedDropsPending(t *testing.T) {
	level := NewLevel(DefaultConfig())
	d := NewDrainer(level, DrainConfig{MoveModifier: 1, DelayFrames: 1}, nil)
	if _, err := d.MoveCommitted(moveOnto(t, 1, false)); err != nil {
		t.Fatal(err)
	}
	d.Released()
	for i := 0; i < 5; i++ {
		d.Tick(0.1, false)
	}
	if level.Current() != 100 {
		t.Fatalf("released climber still drained to %v", level.Current())
	}
}

func TestDrainerPickup(t *testing.T) {
	level := NewLevel(Config{Starting: 50, Max: 100, RapidSpeed: 50, SlowSpeed: 5})
	d := NewDrainer(level, DefaultDrainConfig(), nil)
	d.Pickup(0.5)
	if !approx(level.Current(), 50.5) {
		t.Fatalf("small pickup should apply at once, got %v", level.Current())
	}
	d.Pickup(20)
	if rapid, _ := level.Pools(); !approx(rapid, 20) {
		t.Fatalf("large pickup should fill the rapid pool, got %v", rapid)
	}
}
