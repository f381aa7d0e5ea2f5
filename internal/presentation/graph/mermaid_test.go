package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/hanoi/internal/presentation/graph"
	"github.com/aretw0/hanoi/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		puzzle   domain.Puzzle
		overlay  *graph.GraphOverlay
		contains []string
		absent   []string
	}{
		{
			name:   "Single Disk",
			puzzle: domain.NewPuzzle(1, "A", "B", "C"),
			contains: []string{
				"graph TD\n",
				`f1["1: A → B"]`,
				`m1(("#1 d1: A → B"))`,
				"f1 ==> m1",
			},
			absent: []string{"f2"},
		},
		{
			name:   "Pre-order Numbering",
			puzzle: domain.NewPuzzle(2, "A", "B", "C"),
			contains: []string{
				`f2["1: A → C"]`,
				`m1(("#1 d1: A → C"))`,
				`m2(("#2 d2: A → B"))`,
				`f3["1: C → B"]`,
				`m3(("#3 d1: C → B"))`,
				"f1 --> f2",
				"f1 --> f3",
			},
		},
		{
			name:    "Overlay",
			puzzle:  domain.NewPuzzle(2, "A", "B", "C"),
			overlay: &graph.GraphOverlay{DoneThrough: 1, Current: 2},
			contains: []string{
				"class m1 done;",
				"class m2 current;",
			},
			absent: []string{"class m3"},
		},
		{
			name:   "Label Escaping",
			puzzle: domain.NewPuzzle(1, `say "hi"`, "B", "C"),
			contains: []string{
				`f1["1: say 'hi' → B"]`,
			},
		},
		{
			name:     "Zero Disks",
			puzzle:   domain.NewPuzzle(0, "A", "B", "C"),
			contains: []string{"graph TD\n"},
			absent:   []string{"f1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := graph.GenerateMermaid(tt.puzzle, tt.overlay)
			if err != nil {
				t.Fatalf("GenerateMermaid() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
			for _, unwanted := range tt.absent {
				if strings.Contains(got, unwanted) {
					t.Errorf("GenerateMermaid() = \n%v\nUnexpected substring: %v", got, unwanted)
				}
			}
		})
	}
}

func TestGenerateMermaid_Limits(t *testing.T) {
	if _, err := graph.GenerateMermaid(domain.NewPuzzle(graph.MaxDisks+1, "A", "B", "C"), nil); err == nil {
		t.Error("expected error above MaxDisks")
	}
	if _, err := graph.GenerateMermaid(domain.NewPuzzle(2, "A", "A", "C"), nil); err == nil {
		t.Error("expected validation error for duplicate pegs")
	}
}
