package stamina

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// MoveCost describes a committed move for drain pricing.
type MoveCost struct {
	Quality      int
	Jump         bool
	Steps        int
	MoveModifier float64
	JumpModifier float64
}

// Policy prices a move. The returned cost is positive and is subtracted from
// the level.
type Policy interface {
	Cost(c MoveCost) (float64, error)
}

// FormulaPolicy charges (10 - quality) times the move or jump modifier.
type FormulaPolicy struct{}

func (FormulaPolicy) Cost(c MoveCost) (float64, error) {
	mod := c.MoveModifier
	if c.Jump {
		mod = c.JumpModifier
	}
	return float64(10-c.Quality) * mod, nil
}

// ScriptPolicy evaluates a tengo script per move. The script reads quality,
// jump, steps, move_modifier and jump_modifier and assigns cost. The script is
// compiled once and each move runs on a clone, so Cost is safe to call
// concurrently.
type ScriptPolicy struct {
	compiled *tengo.Compiled
}

func NewScriptPolicy(src []byte) (*ScriptPolicy, error) {
	script := tengo.NewScript(src)
	_ = script.Add("quality", 0)
	_ = script.Add("jump", false)
	_ = script.Add("steps", 0)
	_ = script.Add("move_modifier", 0.0)
	_ = script.Add("jump_modifier", 0.0)
	_ = script.Add("cost", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("stamina: compile drain script: %w", err)
	}
	return &ScriptPolicy{compiled: compiled}, nil
}

func (p *ScriptPolicy) Cost(c MoveCost) (float64, error) {
	vars := []struct {
		name  string
		value any
	}{
		{"quality", c.Quality},
		{"jump", c.Jump},
		{"steps", c.Steps},
		{"move_modifier", c.MoveModifier},
		{"jump_modifier", c.JumpModifier},
		{"cost", 0.0},
	}
	run := p.compiled.Clone()
	for _, v := range vars {
		if err := run.Set(v.name, v.value); err != nil {
			return 0, fmt.Errorf("stamina: set %s: %w", v.name, err)
		}
	}
	if err := run.Run(); err != nil {
		return 0, fmt.Errorf("stamina: run drain script: %w", err)
	}
	return run.Get("cost").Float(), nil
}
