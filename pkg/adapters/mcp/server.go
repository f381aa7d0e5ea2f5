package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"github.com/aretw0/hanoi/pkg/adapters/binding"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/aretw0/hanoi/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ReferenceURI names the resource holding the reference puzzle solution.
const ReferenceURI = "hanoi://puzzle/reference"

// CountResult is the structured payload of count_moves.
type CountResult struct {
	Disks int    `json:"disks" jsonschema_description:"Number of disks"`
	Moves uint64 `json:"moves" jsonschema_description:"Minimal number of moves, 2^disks - 1"`
}

// VerifyResult is the structured payload of verify_moves.
type VerifyResult struct {
	Valid bool   `json:"valid" jsonschema_description:"True when every move is legal and the tower ends on the destination"`
	Moves int    `json:"moves" jsonschema_description:"Number of moves replayed"`
	Error string `json:"error,omitempty" jsonschema_description:"First rule violation, if any"`
}

// Server wraps a Solver and exposes it as an MCP Server.
type Server struct {
	solver    ports.Solver
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(solver ports.Solver, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		solver:    solver,
		logger:    logger,
		mcpServer: server.NewMCPServer("hanoi-mcp", strings.TrimSpace(version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer exposes the underlying server, mostly for in-process transports.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func puzzleOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber(domain.KeyDisks, mcp.Required(), mcp.Description("Number of disks (0 or more)")),
		mcp.WithString(domain.KeySource, mcp.Description("Source peg label (default X)")),
		mcp.WithString(domain.KeyDestination, mcp.Description("Destination peg label (default Z)")),
		mcp.WithString(domain.KeyAuxiliary, mcp.Description("Auxiliary peg label (default Y)")),
	}
}

func (s *Server) registerTools() {
	// TOOL: solve_hanoi
	solveTool := mcp.NewTool("solve_hanoi", append([]mcp.ToolOption{
		mcp.WithDescription("List the minimal move sequence that transfers the tower from source to destination."),
	}, puzzleOptions()...)...)
	s.mcpServer.AddTool(solveTool, s.handleSolve)

	// TOOL: count_moves
	countTool := mcp.NewTool("count_moves",
		mcp.WithDescription("Return the number of moves needed for a tower of the given height."),
		mcp.WithNumber(domain.KeyDisks, mcp.Required(), mcp.Description("Number of disks")),
	)
	s.mcpServer.AddTool(countTool, s.handleCount)

	// TOOL: verify_moves
	verifyTool := mcp.NewTool("verify_moves", append([]mcp.ToolOption{
		mcp.WithDescription("Replay a move list on a board and report whether it legally solves the puzzle."),
		mcp.WithArray("moves", mcp.Required(),
			mcp.Description("Moves as objects with from and to peg labels, or a JSON string of that array"),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"from": map[string]any{"type": "string"},
					"to":   map[string]any{"type": "string"},
					"disk": map[string]any{"type": "integer"},
				},
				"required": []string{"from", "to"},
			}),
		),
	}, puzzleOptions()...)...)
	s.mcpServer.AddTool(verifyTool, s.handleVerify)
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := binding.Puzzle(request.GetArguments(), domain.DefaultPuzzle())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sol, err := s.solver.Solve(ctx, p)
	if err != nil {
		s.logger.Warn("MCP solve_hanoi rejected", "puzzle", p.String(), "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("solve failed: %v", err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d moves\n", p, len(sol.Moves))
	for _, m := range sol.Moves {
		b.WriteString(m.String())
		b.WriteByte('\n')
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleCount(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := binding.Puzzle(request.GetArguments(), domain.DefaultPuzzle())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := p.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(CountResult{Disks: p.Disks, Moves: p.MoveCount()})
}

func (s *Server) handleVerify(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := maps.Clone(request.GetArguments())
	rawMoves := args["moves"]
	delete(args, "moves")

	p, err := binding.Puzzle(args, domain.DefaultPuzzle())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := p.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Some clients send arrays as JSON-encoded strings.
	if str, ok := rawMoves.(string); ok {
		var decoded []any
		if err := json.Unmarshal([]byte(str), &decoded); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("moves: %v", err)), nil
		}
		rawMoves = decoded
	}
	moves, err := binding.Moves(rawMoves)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res := VerifyResult{Valid: true, Moves: len(moves)}
	if err := s.solver.Verify(p, moves); err != nil {
		res.Valid = false
		res.Error = err.Error()
	}
	return jsonResult(res)
}

func (s *Server) registerResources() {
	// EXPOSE: hanoi://puzzle/reference
	s.mcpServer.AddResource(mcp.NewResource(ReferenceURI, "Reference puzzle solution",
		mcp.WithResourceDescription("Five disks from X to Z via Y"),
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		sol, err := s.solver.Solve(ctx, domain.DefaultPuzzle())
		if err != nil {
			return nil, fmt.Errorf("failed to solve reference puzzle: %w", err)
		}
		jsonBytes, err := json.Marshal(sol)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      ReferenceURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
