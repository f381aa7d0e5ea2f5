package domain

import "time"

// Solution is a fully collected move list for a puzzle.
type Solution struct {
	Puzzle    Puzzle    `json:"puzzle"`
	Strategy  Strategy  `json:"strategy"`
	Moves     []Move    `json:"moves"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSolution stamps a collected move list.
func NewSolution(p Puzzle, strategy Strategy, moves []Move) *Solution {
	return &Solution{
		Puzzle:    p,
		Strategy:  strategy,
		Moves:     moves,
		CreatedAt: time.Now().UTC(),
	}
}
