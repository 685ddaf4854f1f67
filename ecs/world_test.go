package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/gripclimb/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex < 0 {
				return
			}
			dead := ents[c.destroyIndex]
			if !DestroyEntity(w, dead) {
				t.Fatalf("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, dead) || DestroyEntity(w, dead) {
				t.Fatalf("entity should not be alive after destruction")
			}
			reused := CreateEntity(w)
			if reused.id() != dead.id() || reused == dead {
				t.Fatalf("expected id reuse with a new generation, got %v after %v", reused, dead)
			}
			if IsAlive(w, dead) {
				t.Fatalf("stale handle revived by id reuse")
			}
		})
	}
}

func TestComponents(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()
	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name  string
		setup func() error
		check func(t *testing.T)
	}{
		{
			name:  "add_and_get",
			setup: func() error { return Add(w, e1, ints.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, ints.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				if Has(w, e2, ints.Kind()) {
					t.Fatalf("e2 has no int")
				}
			},
		},
		{
			name:  "pointer_is_shared",
			setup: func() error { return nil },
			check: func(t *testing.T) {
				v, _ := Get(w, e1, ints.Kind())
				*v = 42
				again, _ := Get(w, e1, ints.Kind())
				if *again != 42 {
					t.Fatalf("mutation through pointer lost")
				}
			},
		},
		{
			name:  "kinds_are_separate",
			setup: func() error { return Add(w, e1, strs.Kind(), stringPtr("a")) },
			check: func(t *testing.T) {
				if !Has(w, e1, strs.Kind()) || !Has(w, e1, ints.Kind()) {
					t.Fatalf("expected both kinds on e1")
				}
			},
		},
		{
			name:  "remove",
			setup: func() error { return nil },
			check: func(t *testing.T) {
				if !Remove(w, e1, strs.Kind()) || Remove(w, e1, strs.Kind()) {
					t.Fatalf("remove should succeed exactly once")
				}
			},
		},
		{
			name:  "destroy_strips_components",
			setup: func() error { return Add(w, e2, ints.Kind(), intPtr(7)) },
			check: func(t *testing.T) {
				DestroyEntity(w, e2)
				if Has(w, e2, ints.Kind()) {
					t.Fatalf("destroyed entity kept its component")
				}
				e3 := CreateEntity(w)
				if Has(w, e3, ints.Kind()) {
					t.Fatalf("reused id inherited a component")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	e := CreateEntity(w)
	if err := Add[int](w, e, ints.Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	if err := Add(w, e, component.ComponentKind[int]{}, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	DestroyEntity(w, e)
	if err := Add(w, e, ints.Kind(), intPtr(1)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestForEachAndQueries(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()
	kc := component.NewComponentKind[int]()
	kd := component.NewComponentKind[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	for _, add := range []struct {
		e Entity
		k component.ComponentKind[int]
		v int
	}{
		{e1, ka, 1}, {e2, ka, 2}, {e2, kb, 3}, {e2, kc, 4}, {e2, kd, 5}, {e3, kb, 6}, {e3, ka, 7},
	} {
		if err := Add(w, add.e, add.k, intPtr(add.v)); err != nil {
			t.Fatal(err)
		}
	}

	cases := []struct {
		name string
		run  func() []Entity
		want []Entity
	}{
		{"for_each", func() (res []Entity) {
			ForEach(w, ka, func(e Entity, _ *int) { res = append(res, e) })
			return
		}, []Entity{e1, e2, e3}},
		{"for_each2", func() (res []Entity) {
			ForEach2(w, ka, kb, func(e Entity, _ *int, _ *int) { res = append(res, e) })
			return
		}, []Entity{e2, e3}},
		{"for_each3", func() (res []Entity) {
			ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
			return
		}, []Entity{e2}},
		{"for_each4", func() (res []Entity) {
			ForEach4(w, ka, kb, kc, kd, func(e Entity, _ *int, _ *int, _ *int, _ *int) { res = append(res, e) })
			return
		}, []Entity{e2}},
		{"query_missing_kind", func() []Entity {
			return w.Query(ka.ID(), component.NewComponentKind[int]().ID())
		}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := toSet(c.run())
			if len(got) != len(c.want) {
				t.Fatalf("expected %d entities, got %d", len(c.want), len(got))
			}
			for _, e := range c.want {
				if _, ok := got[e]; !ok {
					t.Fatalf("expected %v in result", e)
				}
			}
		})
	}

	if first, ok := w.First(kd.ID()); !ok || first != e2 {
		t.Fatalf("First(kd) = %v %v", first, ok)
	}
}

type recordingSystem struct {
	name string
	log  *[]string
	push bool
}

func (s recordingSystem) Update(w *World) {
	*s.log = append(*s.log, s.name)
	if s.push {
		w.Events().Push(Event{Type: s.name})
		return
	}
	for _, evt := range w.Events().Peek() {
		*s.log = append(*s.log, "saw:"+evt.Type)
	}
}

func TestUpdateOrderAndEvents(t *testing.T) {
	w := NewWorld()
	var log []string
	w.AddSystem(recordingSystem{name: "producer", log: &log, push: true})
	w.AddSystem(nil)
	w.AddSystem(recordingSystem{name: "consumer", log: &log})

	w.Update()
	want := []string{"producer", "consumer", "saw:producer"}
	if len(log) != len(want) {
		t.Fatalf("log %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log %v, want %v", log, want)
		}
	}
	if len(w.Events().Peek()) != 0 {
		t.Fatalf("events should be flushed after the frame")
	}
	if len(w.Systems()) != 2 {
		t.Fatalf("nil system registered")
	}
}
