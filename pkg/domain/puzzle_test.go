package domain_test

import (
	"testing"

	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestPuzzle_Validate(t *testing.T) {
	tests := []struct {
		name    string
		puzzle  domain.Puzzle
		wantErr error
	}{
		{"reference fixture", domain.DefaultPuzzle(), nil},
		{"zero disks", domain.NewPuzzle(0, "A", "B", "C"), nil},
		{"max disks", domain.NewPuzzle(domain.MaxDisks, "A", "B", "C"), nil},
		{"negative disks", domain.NewPuzzle(-1, "A", "B", "C"), domain.ErrNegativeDisks},
		{"too many disks", domain.NewPuzzle(domain.MaxDisks+1, "A", "B", "C"), domain.ErrTooManyDisks},
		{"source equals destination", domain.NewPuzzle(3, "A", "A", "C"), domain.ErrDuplicatePeg},
		{"auxiliary equals source", domain.NewPuzzle(3, "A", "B", "A"), domain.ErrDuplicatePeg},
		{"blank label", domain.NewPuzzle(3, "A", " ", "C"), domain.ErrEmptyPeg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.puzzle.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMoveCount(t *testing.T) {
	assert.Equal(t, uint64(0), domain.MoveCount(-3))
	assert.Equal(t, uint64(0), domain.MoveCount(0))
	assert.Equal(t, uint64(1), domain.MoveCount(1))
	assert.Equal(t, uint64(7), domain.MoveCount(3))
	assert.Equal(t, uint64(31), domain.DefaultPuzzle().MoveCount())
	assert.Equal(t, uint64(1<<63-1), domain.MoveCount(63))
}

func TestPuzzle_Key(t *testing.T) {
	assert.Equal(t, `5:"X":"Z":"Y"`, domain.DefaultPuzzle().Key())
	assert.NotEqual(t,
		domain.NewPuzzle(1, "a:b", "c", "d").Key(),
		domain.NewPuzzle(1, "a", "b:c", "d").Key())
	assert.NotEqual(t, domain.NewPuzzle(5, "X", "Y", "Z").Key(), domain.DefaultPuzzle().Key())
}

func TestParseStrategy(t *testing.T) {
	s, err := domain.ParseStrategy("")
	assert.NoError(t, err)
	assert.Equal(t, domain.StrategyRecursive, s)

	s, err = domain.ParseStrategy("iterative")
	assert.NoError(t, err)
	assert.Equal(t, domain.StrategyIterative, s)

	_, err = domain.ParseStrategy("bogus")
	assert.Error(t, err)
}
