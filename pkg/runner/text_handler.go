package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/hanoi/pkg/domain"
)

// LegacyMoveFormat is the console line printed for each move.
// The double spaces around the labels are part of the format.
const LegacyMoveFormat = "move disk from  %s  to  %s\n"

// TextHandler implements the standard text-based output.
type TextHandler struct {
	Writer *bufio.Writer
	// Numbered prefixes each line with its step number.
	Numbered bool
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithNumbering prefixes every line with the step number.
func WithNumbering(numbered bool) TextHandlerOption {
	return func(h *TextHandler) {
		h.Numbered = numbered
	}
}

// NewTextHandler creates a handler for plain text output. A nil writer means stdout.
func NewTextHandler(w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{Writer: bufio.NewWriter(w)}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) Start(ctx context.Context, p domain.Puzzle, strategy domain.Strategy) error {
	return nil
}

func (h *TextHandler) Move(ctx context.Context, m domain.Move) error {
	if h.Numbered {
		if _, err := fmt.Fprintf(h.Writer, "%d: ", m.Step); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(h.Writer, LegacyMoveFormat, m.From, m.To)
	return err
}

func (h *TextHandler) Finish(ctx context.Context, summary Summary) error {
	return h.Writer.Flush()
}
