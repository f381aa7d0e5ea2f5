package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/aretw0/hanoi/pkg/domain"
)

// Record types emitted by JSONHandler, one per line.
const (
	RecordStart  = "start"
	RecordMove   = "move"
	RecordFinish = "finish"
)

// Record is a single NDJSON line.
type Record struct {
	Type       string          `json:"type"`
	Puzzle     *domain.Puzzle  `json:"puzzle,omitempty"`
	Strategy   domain.Strategy `json:"strategy,omitempty"`
	Total      uint64          `json:"total,omitempty"`
	Move       *domain.Move    `json:"move,omitempty"`
	Moves      uint64          `json:"moves,omitempty"`
	DurationMs int64           `json:"duration_ms,omitempty"`
	Complete   *bool           `json:"complete,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// JSONHandler writes JSON-Lines records: a start record, one per move, and a finish record.
type JSONHandler struct {
	Encoder *json.Encoder
}

// NewJSONHandler creates a handler for NDJSON output. A nil writer means stdout.
func NewJSONHandler(w io.Writer) *JSONHandler {
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{Encoder: json.NewEncoder(w)}
}

func (h *JSONHandler) Start(ctx context.Context, p domain.Puzzle, strategy domain.Strategy) error {
	return h.Encoder.Encode(Record{
		Type:     RecordStart,
		Puzzle:   &p,
		Strategy: strategy,
		Total:    p.MoveCount(),
	})
}

func (h *JSONHandler) Move(ctx context.Context, m domain.Move) error {
	return h.Encoder.Encode(Record{Type: RecordMove, Move: &m})
}

func (h *JSONHandler) Finish(ctx context.Context, summary Summary) error {
	complete := summary.Complete()
	rec := Record{
		Type:       RecordFinish,
		Moves:      summary.Moves,
		DurationMs: summary.Duration.Milliseconds(),
		Complete:   &complete,
	}
	if summary.Err != nil {
		rec.Error = summary.Err.Error()
	}
	return h.Encoder.Encode(rec)
}
