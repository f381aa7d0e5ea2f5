package mcp

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/hanoi"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	return NewServer(hanoi.New(hanoi.WithCollectLimit(8)), "v0.0.0-test\n", nil)
}

func call(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestHandleSolve(t *testing.T) {
	s := newTestServer()

	res, err := s.handleSolve(t.Context(), call(map[string]any{
		"disks": float64(2), "source": "A", "destination": "B", "auxiliary": "C",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	text := resultText(t, res)
	assert.Contains(t, text, "3 moves")
	assert.Contains(t, text, "#1 disk 1: A -> C")
	assert.Contains(t, text, "#2 disk 2: A -> B")
	assert.Contains(t, text, "#3 disk 1: C -> B")
}

func TestHandleSolve_Errors(t *testing.T) {
	s := newTestServer()

	tests := map[string]map[string]any{
		"MissingDisks":    {"source": "A"},
		"DuplicatePegs":   {"disks": float64(2), "source": "A", "destination": "A"},
		"AboveLimit":      {"disks": float64(9)},
		"UnknownArgument": {"disks": float64(2), "speed": "fast"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			res, err := s.handleSolve(t.Context(), call(args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
		})
	}
}

func TestHandleCount(t *testing.T) {
	s := newTestServer()

	res, err := s.handleCount(t.Context(), call(map[string]any{"disks": float64(10)}))
	require.NoError(t, err)

	var got CountResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.Equal(t, CountResult{Disks: 10, Moves: 1023}, got)

	res, err = s.handleCount(t.Context(), call(map[string]any{"disks": float64(-3)}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleVerify(t *testing.T) {
	s := newTestServer()
	valid := []any{
		map[string]any{"from": "A", "to": "C"},
		map[string]any{"from": "A", "to": "B"},
		map[string]any{"from": "C", "to": "B"},
	}

	t.Run("Array", func(t *testing.T) {
		args := map[string]any{
			"disks": float64(2), "source": "A", "destination": "B", "auxiliary": "C",
			"moves": valid,
		}
		res, err := s.handleVerify(t.Context(), call(args))
		require.NoError(t, err)

		var got VerifyResult
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
		assert.True(t, got.Valid)
		assert.Equal(t, 3, got.Moves)
		assert.Contains(t, args, "moves", "request arguments must not be mutated")
	})

	t.Run("JSONString", func(t *testing.T) {
		res, err := s.handleVerify(t.Context(), call(map[string]any{
			"disks": float64(2), "source": "A", "destination": "B", "auxiliary": "C",
			"moves": `[{"from":"A","to":"B"},{"from":"A","to":"B"}]`,
		}))
		require.NoError(t, err)

		var got VerifyResult
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
		assert.False(t, got.Valid)
		assert.Contains(t, got.Error, "step 2")
	})

	t.Run("BadMoves", func(t *testing.T) {
		res, err := s.handleVerify(t.Context(), call(map[string]any{
			"disks": float64(1), "moves": "not json",
		}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})
}
