package domain

import "fmt"

// Move relocates the top disk of one peg onto another.
type Move struct {
	// Step is the 1-based position of the move in emission order.
	Step uint64 `json:"step" mapstructure:"step"`
	// Disk is the size rank of the moved disk, 1 being the smallest.
	Disk int `json:"disk" mapstructure:"disk"`
	From Peg `json:"from" mapstructure:"from"`
	To   Peg `json:"to" mapstructure:"to"`
}

func (m Move) String() string {
	return fmt.Sprintf("#%d disk %d: %s -> %s", m.Step, m.Disk, m.From, m.To)
}
