package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/hanoi/pkg/domain"
)

// MaxDisks bounds the recursion tree; it has 2^(n+1) - 1 frames.
const MaxDisks = 6

// GraphOverlay contains dynamic data to visualize on the tree.
type GraphOverlay struct {
	// DoneThrough marks the moves with Step <= DoneThrough as done.
	DoneThrough uint64
	// Current marks the move with this Step as current.
	Current uint64
}

// GenerateMermaid produces a Mermaid flowchart of the recursion tree for p.
// It applies semantic styling:
// - Subproblem frame: [Rectangle] "n: src → dst"
// - Emitted move: ((Circle)) "#step d: src → dst"
// - Base case (n == 0) frames are omitted.
// Edges are numbered in visiting order so the pre-order is readable.
func GenerateMermaid(p domain.Puzzle, overlay *GraphOverlay) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	if p.Disks > MaxDisks {
		return "", fmt.Errorf("%w: tree drawing supports up to %d disks", domain.ErrTooManyDisks, MaxDisks)
	}

	g := &builder{}
	g.sb.WriteString("graph TD\n")
	if p.Disks > 0 {
		g.frame(p.Disks, p.Source, p.Destination, p.Auxiliary)
	}

	if overlay != nil && len(g.moves) > 0 {
		g.sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds
		g.sb.WriteString("    classDef done fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		g.sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		for i, id := range g.moves {
			step := uint64(i + 1)
			switch {
			case step == overlay.Current:
				fmt.Fprintf(&g.sb, "    class %s current;\n", id)
			case step <= overlay.DoneThrough:
				fmt.Fprintf(&g.sb, "    class %s done;\n", id)
			}
		}
	}
	return g.sb.String(), nil
}

type builder struct {
	sb     strings.Builder
	frames int
	moves  []string // node IDs, indexed by step-1
}

// frame writes the subtree for one (n, src, dst, aux) call and returns its node ID.
func (g *builder) frame(n int, src, dst, aux domain.Peg) string {
	g.frames++
	id := fmt.Sprintf("f%d", g.frames)
	fmt.Fprintf(&g.sb, "    %s[\"%d: %s → %s\"]\n", id, n, sanitizeLabel(src), sanitizeLabel(dst))

	if n > 1 {
		left := g.frame(n-1, src, aux, dst)
		fmt.Fprintf(&g.sb, "    %s --> %s\n", id, left)
	}

	step := len(g.moves) + 1
	moveID := fmt.Sprintf("m%d", step)
	g.moves = append(g.moves, moveID)
	fmt.Fprintf(&g.sb, "    %s((\"#%d d%d: %s → %s\"))\n", moveID, step, n, sanitizeLabel(src), sanitizeLabel(dst))
	fmt.Fprintf(&g.sb, "    %s ==> %s\n", id, moveID)

	if n > 1 {
		right := g.frame(n-1, aux, dst, src)
		fmt.Fprintf(&g.sb, "    %s --> %s\n", id, right)
	}
	return id
}

// sanitizeLabel escapes characters that break a quoted Mermaid label.
func sanitizeLabel(p domain.Peg) string {
	s := strings.ReplaceAll(p.String(), "\"", "'")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
