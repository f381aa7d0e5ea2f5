package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoMoves(yield func(domain.Move) bool) error {
	if !yield(domain.Move{Step: 1, Disk: 1, From: "A", To: "B"}) {
		return nil
	}
	yield(domain.Move{Step: 2, Disk: 2, From: "A", To: "C"})
	return nil
}

func TestMoveStream_ConsumedOnce(t *testing.T) {
	s := domain.NewMoveStream(domain.NewPuzzle(2, "A", "B", "C"), twoMoves)

	moves, err := s.Collect()
	require.NoError(t, err)
	assert.Len(t, moves, 2)

	again, err := s.Collect()
	assert.Empty(t, again)
	assert.ErrorIs(t, err, domain.ErrStreamConsumed)
}

func TestMoveStream_EarlyBreak(t *testing.T) {
	s := domain.NewMoveStream(domain.NewPuzzle(2, "A", "B", "C"), twoMoves)
	var seen int
	for range s.All() {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
	assert.NoError(t, s.Err())
}

func TestMoveStream_ProducerError(t *testing.T) {
	boom := errors.New("boom")
	s := domain.NewMoveStream(domain.NewPuzzle(1, "A", "B", "C"), func(yield func(domain.Move) bool) error {
		return boom
	})
	_, err := s.Collect()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, uint64(1), s.Len())
}

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{OnMove: func(_ context.Context, _ *domain.MoveEvent) { calls = append(calls, "a") }}
	b := domain.LifecycleHooks{
		OnMove:       func(_ context.Context, _ *domain.MoveEvent) { calls = append(calls, "b") },
		OnSolveStart: func(_ context.Context, _ *domain.SolveEvent) { calls = append(calls, "start") },
	}
	m := a.Merge(b)
	m.OnMove(context.Background(), &domain.MoveEvent{})
	m.OnSolveStart(context.Background(), &domain.SolveEvent{})
	assert.Nil(t, m.OnSolveFinish)
	assert.Equal(t, []string{"a", "b", "start"}, calls)
}
