package stamina

import (
	"sync"
	"testing"
)

const testDrainScript = `
mod := move_modifier
if jump {
	mod = jump_modifier
}
cost = (10 - quality) * mod
if jump && steps > 1 {
	cost = cost + steps
}
`

func TestScriptPolicy(t *testing.T) {
	p, err := NewScriptPolicy([]byte(testDrainScript))
	if err != nil {
		t.Fatalf("NewScriptPolicy: %v", err)
	}
	cases := []struct {
		name string
		in   MoveCost
		want float64
	}{
		{"move", MoveCost{Quality: 6, MoveModifier: 1.5, JumpModifier: 4}, 6},
		{"short_jump", MoveCost{Quality: 6, Jump: true, Steps: 1, MoveModifier: 1.5, JumpModifier: 4}, 16},
		{"long_jump", MoveCost{Quality: 6, Jump: true, Steps: 3, MoveModifier: 1.5, JumpModifier: 4}, 19},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := p.Cost(c.in)
			if err != nil {
				t.Fatalf("Cost: %v", err)
			}
			if !approx(got, c.want) {
				t.Fatalf("cost = %v, want %v", got, c.want)
			}
		})
	}
}

func TestScriptPolicyMatchesFormulaForMoves(t *testing.T) {
	p, err := NewScriptPolicy([]byte(testDrainScript))
	if err != nil {
		t.Fatal(err)
	}
	for q := 1; q <= 10; q++ {
		in := MoveCost{Quality: q, MoveModifier: 2, JumpModifier: 3}
		want, _ := FormulaPolicy{}.Cost(in)
		got, err := p.Cost(in)
		if err != nil || !approx(got, want) {
			t.Fatalf("quality %d: script %v (%v), formula %v", q, got, err, want)
		}
	}
}

func TestScriptPolicyConcurrentRuns(t *testing.T) {
	p, err := NewScriptPolicy([]byte(testDrainScript))
	if err != nil {
		t.Fatal(err)
	}
	got := make([]float64, 10)
	errs := make([]error, 10)
	var wg sync.WaitGroup
	for i := range got {
		wg.Add(1)
		go func(q int) {
			defer wg.Done()
			got[q], errs[q] = p.Cost(MoveCost{Quality: q + 1, MoveModifier: 2, JumpModifier: 3})
		}(i)
	}
	wg.Wait()
	for i := range got {
		want := float64(10-(i+1)) * 2
		if errs[i] != nil || !approx(got[i], want) {
			t.Fatalf("quality %d: cost %v (%v), want %v", i+1, got[i], errs[i], want)
		}
	}
}

func TestScriptPolicyCompileError(t *testing.T) {
	if _, err := NewScriptPolicy([]byte("cost = (")); err == nil {
		t.Fatalf("expected a compile error")
	}
}
