package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/muesli/termenv"
)

// MaxBoardDisks bounds the final board drawing; wider boards do not fit a terminal.
const MaxBoardDisks = 12

// diskPalette cycles per disk rank (Indigo to Rose).
var diskPalette = []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6", "#fb7185"}

// RichHandler prints colored moves, a markdown summary and the final board.
type RichHandler struct {
	Output    *termenv.Output
	Renderer  ContentRenderer
	ShowBoard bool

	profile    termenv.Profile
	hasProfile bool
	puzzle     domain.Puzzle
	board      *domain.Board
}

// RichHandlerOption defines configuration for RichHandler.
type RichHandlerOption func(*RichHandler)

// WithRichRenderer configures the markdown renderer used for the summary.
func WithRichRenderer(renderer ContentRenderer) RichHandlerOption {
	return func(h *RichHandler) {
		h.Renderer = renderer
	}
}

// WithProfile forces a color profile (e.g. termenv.Ascii in tests).
func WithProfile(p termenv.Profile) RichHandlerOption {
	return func(h *RichHandler) {
		h.profile = p
		h.hasProfile = true
	}
}

// WithBoard toggles the final board drawing.
func WithBoard(show bool) RichHandlerOption {
	return func(h *RichHandler) {
		h.ShowBoard = show
	}
}

// NewRichHandler creates a handler for terminal output. A nil writer means stdout.
func NewRichHandler(w io.Writer, opts ...RichHandlerOption) *RichHandler {
	if w == nil {
		w = os.Stdout
	}
	h := &RichHandler{ShowBoard: true}
	for _, opt := range opts {
		opt(h)
	}
	if h.hasProfile {
		h.Output = termenv.NewOutput(w, termenv.WithProfile(h.profile))
	} else {
		h.Output = termenv.NewOutput(w)
	}
	return h
}

func (h *RichHandler) Start(ctx context.Context, p domain.Puzzle, strategy domain.Strategy) error {
	h.puzzle = p
	h.board = domain.NewBoard(p)
	title := h.Output.String(fmt.Sprintf("Moving %d disks from %s to %s via %s", p.Disks, p.Source, p.Destination, p.Auxiliary)).
		Foreground(h.Output.Color("#818cf8")).
		Bold()
	_, err := fmt.Fprintf(h.Output, "%s\n\n", title)
	return err
}

func (h *RichHandler) Move(ctx context.Context, m domain.Move) error {
	if h.board != nil {
		if err := h.board.Apply(m); err != nil {
			return fmt.Errorf("illegal move %v: %w", m, err)
		}
	}
	color := diskPalette[(max(m.Disk, 1)-1)%len(diskPalette)]
	step := h.Output.String(fmt.Sprintf("%6d", m.Step)).Faint()
	disk := h.Output.String(fmt.Sprintf("disk %-2d", m.Disk)).Foreground(h.Output.Color(color))
	from := h.Output.String(m.From.String()).Bold()
	to := h.Output.String(m.To.String()).Bold()
	_, err := fmt.Fprintf(h.Output, "%s  %s  %s -> %s\n", step, disk, from, to)
	return err
}

func (h *RichHandler) Finish(ctx context.Context, summary Summary) error {
	md := summaryMarkdown(summary)
	out := md
	if h.Renderer != nil {
		if rendered, err := h.Renderer(md); err == nil {
			out = rendered
		}
	}
	if _, err := fmt.Fprintf(h.Output, "\n%s\n", strings.TrimSpace(out)); err != nil {
		return err
	}

	if h.ShowBoard && h.board != nil && h.puzzle.Disks <= MaxBoardDisks {
		_, err := fmt.Fprintf(h.Output, "\n%s", RenderBoard(h.board, h.puzzle))
		return err
	}
	return nil
}

func summaryMarkdown(s Summary) string {
	var sb strings.Builder
	status := "Solved"
	if !s.Complete() {
		status = "Stopped"
	}
	fmt.Fprintf(&sb, "## %s %d disks: %s to %s via %s\n\n",
		status, s.Puzzle.Disks, s.Puzzle.Source, s.Puzzle.Destination, s.Puzzle.Auxiliary)
	sb.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Moves | %d of %d |\n", s.Moves, s.Expected)
	fmt.Fprintf(&sb, "| Strategy | %s |\n", s.Strategy)
	fmt.Fprintf(&sb, "| Duration | %s |\n", s.Duration)
	if s.Err != nil {
		fmt.Fprintf(&sb, "| Error | %s |\n", s.Err)
	}
	return sb.String()
}
