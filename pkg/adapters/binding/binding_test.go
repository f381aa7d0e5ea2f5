package binding_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/hanoi/pkg/adapters/binding"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonMap(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func TestPuzzle(t *testing.T) {
	defaults := domain.DefaultPuzzle()

	p, err := binding.Puzzle(jsonMap(t, `{"disks": 3}`), defaults)
	require.NoError(t, err)
	assert.Equal(t, domain.NewPuzzle(3, "X", "Z", "Y"), p)

	p, err = binding.Puzzle(jsonMap(t, `{"disks": 4, "source": "A", "destination": "B", "auxiliary": "C"}`), defaults)
	require.NoError(t, err)
	assert.Equal(t, domain.NewPuzzle(4, "A", "B", "C"), p)

	p, err = binding.Puzzle(jsonMap(t, `{"disks": "2", "from": "L", "to": "R", "via": "M"}`), defaults)
	require.NoError(t, err)
	assert.Equal(t, domain.NewPuzzle(2, "L", "R", "M"), p)
}

func TestPuzzle_Errors(t *testing.T) {
	_, err := binding.Puzzle(jsonMap(t, `{"source": "A"}`), domain.DefaultPuzzle())
	assert.Error(t, err)

	_, err = binding.Puzzle(jsonMap(t, `{"disks": 3, "colour": "red"}`), domain.DefaultPuzzle())
	assert.Error(t, err)
}

func TestMoves(t *testing.T) {
	var raw any
	require.NoError(t, json.Unmarshal([]byte(`[{"from":"A","to":"C"},{"from":"A","to":"B","disk":2}]`), &raw))

	moves, err := binding.Moves(raw)
	require.NoError(t, err)
	assert.Equal(t, []domain.Move{
		{From: "A", To: "C"},
		{From: "A", To: "B", Disk: 2},
	}, moves)
}
