package domain

import "strings"

// Peg is an opaque label naming one of the three pegs.
// It carries no structure beyond identity.
type Peg string

// Labels used by the reference fixture.
const (
	PegX Peg = "X"
	PegY Peg = "Y"
	PegZ Peg = "Z"
)

func (p Peg) String() string { return string(p) }

// IsBlank reports whether the label is empty or whitespace only.
func (p Peg) IsBlank() bool {
	return strings.TrimSpace(string(p)) == ""
}
