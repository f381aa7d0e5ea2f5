package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the shared root command; flag values persist between calls.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	t.Run("Count", func(t *testing.T) {
		out, err := execute(t, "", "count", "10")
		require.NoError(t, err)
		assert.Equal(t, "1023\n", out)
	})

	t.Run("Version", func(t *testing.T) {
		out, err := execute(t, "", "version")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "hanoi version v"))
	})

	var moves string
	t.Run("Run", func(t *testing.T) {
		out, err := execute(t, "", "run", "--disks", "2", "--from", "A", "--to", "B", "--via", "C", "--output", "text")
		require.NoError(t, err)
		assert.Equal(t,
			"move disk from  A  to  C\nmove disk from  A  to  B\nmove disk from  C  to  B\n",
			out)
		moves = out
	})

	t.Run("Verify", func(t *testing.T) {
		out, err := execute(t, moves, "verify", "--disks", "2", "--from", "A", "--to", "B", "--via", "C")
		require.NoError(t, err)
		assert.Contains(t, out, "OK: 3 moves")

		_, err = execute(t, "move disk from  A  to  B\n", "verify", "--disks", "2", "--from", "A", "--to", "B", "--via", "C")
		assert.Error(t, err)
	})

	t.Run("Graph", func(t *testing.T) {
		out, err := execute(t, "", "graph", "--disks", "2")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "graph TD"))
	})

	t.Run("InvalidPuzzle", func(t *testing.T) {
		_, err := execute(t, "", "run", "--disks", "2", "--from", "A", "--to", "A")
		assert.Error(t, err)
	})
}
