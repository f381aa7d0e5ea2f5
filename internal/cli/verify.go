package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/aretw0/hanoi/pkg/adapters/binding"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/aretw0/hanoi/pkg/runner"
)

// legacyLine matches the text output, with or without the "N: " numbering.
// Labels may contain single spaces; the format delimits them with two.
var legacyLine = regexp.MustCompile(`^(?:\d+:\s*)?move disk from  (.+?)  to  (.+)$`)

// ParseMoves reads a move list in any format the run command writes:
// a JSON array of moves, NDJSON records, or legacy text lines.
func ParseMoves(r io.Reader) ([]domain.Move, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read moves: %w", err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var raw []any
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, fmt.Errorf("invalid JSON move list: %w", err)
		}
		return binding.Moves(raw)
	}

	var moves []domain.Move
	scanner := bufio.NewScanner(bytes.NewReader(trimmed))
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "{"):
			var rec runner.Record
			if err := json.Unmarshal([]byte(line), &rec); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if rec.Type == runner.RecordMove && rec.Move != nil {
				moves = append(moves, *rec.Move)
			}
		default:
			m := legacyLine.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("line %d: unrecognized move %q", lineNo, line)
			}
			moves = append(moves, domain.Move{From: domain.Peg(m[1]), To: domain.Peg(m[2])})
		}
	}
	return moves, scanner.Err()
}

// Verify replays the moves read from r against p.
func Verify(app *App, p domain.Puzzle, r io.Reader) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	moves, err := ParseMoves(r)
	if err != nil {
		return 0, err
	}
	return len(moves), app.Solver.Verify(p, moves)
}
