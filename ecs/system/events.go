package system

import (
	"github.com/milk9111/gripclimb/climb"
	"github.com/milk9111/gripclimb/ecs"
)

// Event types pushed to the world queue. Events live for one frame and are
// visible to every system that runs after the one that pushed them.
const (
	EventCandidatesChanged = "candidates_changed"
	EventMoveCommitted     = "move_committed"
	EventMoveCompleted     = "move_completed"
	EventAttached          = "attached"
	EventDetached          = "detached"
	EventExhausted         = "exhausted"
	EventRespawned         = "respawned"
	EventPickup            = "pickup"
	EventGoalReached       = "goal_reached"
)

// MoveEvent is the payload of the move events.
type MoveEvent struct {
	Entity ecs.Entity
	Move   climb.Move
}

// CandidatesEvent is the payload of EventCandidatesChanged.
type CandidatesEvent struct {
	Entity ecs.Entity
	Moves  climb.Moves
}

// EntityEvent carries the entity for attach, detach, exhausted, respawn and
// goal events.
type EntityEvent struct {
	Entity ecs.Entity
}

// PickupEvent reports a consumed pickup.
type PickupEvent struct {
	Entity ecs.Entity
	Amount float64
}

// eventObserver forwards controller callbacks to the world queue.
type eventObserver struct {
	queue  *ecs.EventQueue
	entity ecs.Entity
}

func (o eventObserver) CandidatesChanged(_ *climb.Controller, moves climb.Moves) {
	o.queue.Push(ecs.Event{Type: EventCandidatesChanged, Data: CandidatesEvent{Entity: o.entity, Moves: moves}})
}

func (o eventObserver) MoveCommitted(_ *climb.Controller, m climb.Move) {
	o.queue.Push(ecs.Event{Type: EventMoveCommitted, Data: MoveEvent{Entity: o.entity, Move: m}})
}

func (o eventObserver) MoveCompleted(_ *climb.Controller, m climb.Move) {
	o.queue.Push(ecs.Event{Type: EventMoveCompleted, Data: MoveEvent{Entity: o.entity, Move: m}})
}

func pushEntityEvent(w *ecs.World, typ string, e ecs.Entity) {
	w.Events().Push(ecs.Event{Type: typ, Data: EntityEvent{Entity: e}})
}

// movesFor returns the moves of one type concerning e.
func movesFor(w *ecs.World, typ string, e ecs.Entity) []climb.Move {
	var out []climb.Move
	for _, evt := range w.Events().Of(typ) {
		if me, ok := evt.Data.(MoveEvent); ok && me.Entity == e {
			out = append(out, me.Move)
		}
	}
	return out
}

// hasEntityEvent reports whether an EntityEvent of typ for e is queued.
func hasEntityEvent(w *ecs.World, typ string, e ecs.Entity) bool {
	for _, evt := range w.Events().Of(typ) {
		if ee, ok := evt.Data.(EntityEvent); ok && ee.Entity == e {
			return true
		}
	}
	return false
}
