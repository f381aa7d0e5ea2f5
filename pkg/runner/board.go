package runner

import (
	"strings"

	"github.com/aretw0/hanoi/pkg/domain"
)

// RenderBoard draws the pegs side by side, largest disks at the bottom,
// with the labels underneath in source, destination, auxiliary order.
func RenderBoard(b *domain.Board, p domain.Puzzle) string {
	n := max(p.Disks, 0)
	width := 2*n + 1
	pegs := p.Pegs()

	var sb strings.Builder
	for row := n; row >= 0; row-- {
		for i, peg := range pegs {
			if i > 0 {
				sb.WriteString(" ")
			}
			stack := b.Stack(peg)
			cell := "|"
			if row < len(stack) {
				d := stack[row]
				cell = strings.Repeat("=", d) + "|" + strings.Repeat("=", d)
			}
			sb.WriteString(center(cell, width))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat("-", 3*width+2))
	sb.WriteString("\n")
	for i, peg := range pegs {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(center(peg.String(), width))
	}
	sb.WriteString("\n")
	return sb.String()
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
