package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSolveStart  EventType = "solve_start"
	EventMove        EventType = "move"
	EventSolveFinish EventType = "solve_finish"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// SolveEvent marks the start or end of a stream iteration.
type SolveEvent struct {
	EventBase
	Puzzle   Puzzle        `json:"puzzle"`
	Strategy Strategy      `json:"strategy"`
	Moves    uint64        `json:"moves,omitempty"`    // set on finish
	Duration time.Duration `json:"duration,omitempty"` // set on finish
	Err      error         `json:"-"`
}

// MoveEvent reports a single emitted move.
type MoveEvent struct {
	EventBase
	Move Move `json:"move"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnSolveStart  func(context.Context, *SolveEvent)
	OnMove        func(context.Context, *MoveEvent)
	OnSolveFinish func(context.Context, *SolveEvent)
}

// Merge chains two hook sets; both callbacks run, receiver first.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnSolveStart:  chain(h.OnSolveStart, other.OnSolveStart),
		OnMove:        chain(h.OnMove, other.OnMove),
		OnSolveFinish: chain(h.OnSolveFinish, other.OnSolveFinish),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
