package system

import (
	"github.com/milk9111/gripclimb/ecs"
	"github.com/milk9111/gripclimb/ecs/component"
	"github.com/milk9111/gripclimb/storage"
)

// SessionStore is the part of storage.Store the recorder needs.
type SessionStore interface {
	StartSession(level string) (string, error)
	RecordMove(sessionID string, m storage.MoveRecord) error
	FinishSession(sessionID string, reachedGoal bool, staminaLeft float64) error
}

// SessionSystem records the player's climb into a SessionStore.
type SessionSystem struct {
	Store SessionStore
}

func NewSessionSystem(store SessionStore) *SessionSystem {
	return &SessionSystem{Store: store}
}

func (s *SessionSystem) Update(w *ecs.World) {
	if s.Store == nil {
		return
	}
	rt := levelRuntime(w)
	if rt == nil || rt.Level == nil {
		return
	}
	player, ok := w.First(component.PlayerTagComponent.Kind().ID())
	if !ok {
		return
	}

	if rt.SessionID == "" && !rt.Completed {
		id, err := s.Store.StartSession(rt.Level.Name)
		if err != nil {
			logger.Error("start session", "level", rt.Level.Name, "err", err)
			s.Store = nil
			return
		}
		rt.SessionID = id
		logger.Debug("session started", "id", id, "level", rt.Level.Name)
	}
	if rt.SessionID == "" {
		return
	}

	left := 0.0
	if gs, ok := ecs.Get(w, player, component.GripStaminaComponent.Kind()); ok && gs.Level() != nil {
		left = gs.Level().Current()
	}

	for _, m := range movesFor(w, EventMoveCompleted, player) {
		rec := storage.MoveRecord{
			Direction: m.Direction.String(),
			Jump:      m.JumpRequired,
			Steps:     m.JumpSteps,
			Stamina:   left,
		}
		if g := m.ConnectingGrip(); g != nil {
			rec.Quality = g.Quality()
		}
		if err := s.Store.RecordMove(rt.SessionID, rec); err != nil {
			logger.Error("record move", "session", rt.SessionID, "err", err)
		}
	}

	if hasEntityEvent(w, EventGoalReached, player) {
		s.finish(rt, true, left)
	}
}

// Finish closes the current session without reaching the goal. The game
// calls it before restarting or leaving a level.
func (s *SessionSystem) Finish(w *ecs.World) {
	if s.Store == nil {
		return
	}
	if rt := levelRuntime(w); rt != nil && rt.SessionID != "" && !rt.Completed {
		s.finish(rt, false, 0)
	}
}

func (s *SessionSystem) finish(rt *component.LevelRuntime, reached bool, left float64) {
	if err := s.Store.FinishSession(rt.SessionID, reached, left); err != nil {
		logger.Error("finish session", "session", rt.SessionID, "err", err)
		return
	}
	logger.Info("session finished", "session", rt.SessionID, "goal", reached)
}
