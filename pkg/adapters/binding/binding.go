// Package binding decodes loosely typed transport arguments (JSON bodies,
// MCP tool arguments) into domain values.
package binding

import (
	"fmt"

	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// PuzzleArgs accepts both the long field names and the from/to/via shorthand.
type PuzzleArgs struct {
	Disks       *int   `mapstructure:"disks"`
	Source      string `mapstructure:"source"`
	Destination string `mapstructure:"destination"`
	Auxiliary   string `mapstructure:"auxiliary"`
	From        string `mapstructure:"from"`
	To          string `mapstructure:"to"`
	Via         string `mapstructure:"via"`
}

func decode(input, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

// Puzzle decodes raw into a puzzle, filling unset pegs from defaults.
// The disk count is required. The result is not validated.
func Puzzle(raw map[string]any, defaults domain.Puzzle) (domain.Puzzle, error) {
	var args PuzzleArgs
	if err := decode(raw, &args); err != nil {
		return domain.Puzzle{}, fmt.Errorf("invalid puzzle arguments: %w", err)
	}
	if args.Disks == nil {
		return domain.Puzzle{}, fmt.Errorf("invalid puzzle arguments: %q is required", domain.KeyDisks)
	}

	p := defaults
	p.Disks = *args.Disks
	p.Source = pick(p.Source, args.Source, args.From)
	p.Destination = pick(p.Destination, args.Destination, args.To)
	p.Auxiliary = pick(p.Auxiliary, args.Auxiliary, args.Via)
	return p, nil
}

// pick returns the first non-empty candidate, else fallback.
func pick(fallback domain.Peg, candidates ...string) domain.Peg {
	for _, c := range candidates {
		if c != "" {
			return domain.Peg(c)
		}
	}
	return fallback
}

// Moves decodes a list of {from, to[, disk, step]} objects.
func Moves(raw any) ([]domain.Move, error) {
	var moves []domain.Move
	if err := decode(raw, &moves); err != nil {
		return nil, fmt.Errorf("invalid moves: %w", err)
	}
	return moves, nil
}
