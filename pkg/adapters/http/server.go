package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aretw0/hanoi/pkg/adapters/binding"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/aretw0/hanoi/pkg/ports"
	"github.com/aretw0/hanoi/pkg/runner"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
)

//go:embed openapi.yaml
var rawSpec []byte

// maxBodyBytes bounds request bodies; a verify request for MaxDisks disks is far below it.
const maxBodyBytes = 8 << 20

// Server exposes a Solver over a JSON API.
type Server struct {
	Solver  ports.Solver
	Logger  *slog.Logger
	Metrics http.Handler

	spec *openapi3.T
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetrics mounts a metrics handler (e.g. promhttp) at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// LoadSpec parses and validates the embedded OpenAPI document.
func LoadSpec(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI spec: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI spec: %w", err)
	}
	return doc, nil
}

// NewHandler creates a new HTTP handler for the solver.
func NewHandler(solver ports.Solver, opts ...Option) (http.Handler, error) {
	spec, err := LoadSpec(context.Background())
	if err != nil {
		return nil, err
	}
	s := &Server{Solver: solver, spec: spec}
	for _, opt := range opts {
		opt(s)
	}
	if s.Logger == nil {
		s.Logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/health", s.GetHealth)
	r.Get("/count/{disks}", s.GetCount)
	r.Get("/solve/{disks}", s.GetSolve)
	r.Post("/solve", s.PostSolve)
	r.Post("/verify", s.PostVerify)
	if s.Metrics != nil {
		r.Handle("/metrics", s.Metrics)
	}
	return r, nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CountResponse is the body of GET /count/{disks}.
type CountResponse struct {
	Disks int    `json:"disks"`
	Moves uint64 `json:"moves"`
}

// VerifyResponse is the body of POST /verify.
type VerifyResponse struct {
	Valid bool   `json:"valid"`
	Moves int    `json:"moves"`
	Error string `json:"error,omitempty"`
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, s.Logger)
}

// GetCount handles the GET /count/{disks} request.
func (s *Server) GetCount(w http.ResponseWriter, r *http.Request) {
	disks, ok := s.bindDisks(w, r)
	if !ok {
		return
	}
	if disks < 0 || disks > domain.MaxDisks {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("disks must be within 0..%d", domain.MaxDisks))
		return
	}
	writeJSON(w, http.StatusOK, CountResponse{Disks: disks, Moves: domain.MoveCount(disks)}, s.Logger)
}

// GetSolve handles the GET /solve/{disks} request.
// format=json (default) returns the collected solution; ndjson and text stream it.
func (s *Server) GetSolve(w http.ResponseWriter, r *http.Request) {
	disks, ok := s.bindDisks(w, r)
	if !ok {
		return
	}

	p := domain.DefaultPuzzle()
	p.Disks = disks
	var from, to, via, format string
	query := r.URL.Query()
	for name, dest := range map[string]*string{"from": &from, "to": &to, "via": &via, "format": &format} {
		if err := runtime.BindQueryParameter("form", true, false, name, query, dest); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %v", name, err))
			return
		}
	}
	if from != "" {
		p.Source = domain.Peg(from)
	}
	if to != "" {
		p.Destination = domain.Peg(to)
	}
	if via != "" {
		p.Auxiliary = domain.Peg(via)
	}

	switch format {
	case "", "json":
		s.solve(w, r, p)
	case "ndjson":
		s.stream(w, r, p, "application/x-ndjson", runner.NewJSONHandler(w))
	case "text":
		s.stream(w, r, p, "text/plain; charset=utf-8", runner.NewTextHandler(w))
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown format %q", format))
	}
}

// PostSolve handles the POST /solve request.
func (s *Server) PostSolve(w http.ResponseWriter, r *http.Request) {
	body, ok := s.decodeBody(w, r, "Puzzle")
	if !ok {
		return
	}
	p, err := binding.Puzzle(body, domain.DefaultPuzzle())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.solve(w, r, p)
}

// PostVerify handles the POST /verify request.
func (s *Server) PostVerify(w http.ResponseWriter, r *http.Request) {
	body, ok := s.decodeBody(w, r, "VerifyRequest")
	if !ok {
		return
	}
	rawPuzzle, _ := body["puzzle"].(map[string]any)
	p, err := binding.Puzzle(rawPuzzle, domain.DefaultPuzzle())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	moves, err := binding.Moves(body["moves"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := p.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := VerifyResponse{Valid: true, Moves: len(moves)}
	if err := s.Solver.Verify(p, moves); err != nil {
		resp.Valid = false
		resp.Error = err.Error()
	}
	writeJSON(w, http.StatusOK, resp, s.Logger)
}

func (s *Server) solve(w http.ResponseWriter, r *http.Request, p domain.Puzzle) {
	sol, err := s.Solver.Solve(r.Context(), p)
	if err != nil {
		s.writeDomainError(w, "Solve", err)
		return
	}
	writeJSON(w, http.StatusOK, sol, s.Logger)
}

func (s *Server) stream(w http.ResponseWriter, r *http.Request, p domain.Puzzle, contentType string, h runner.Handler) {
	stream, err := s.Solver.Stream(r.Context(), p)
	if err != nil {
		s.writeDomainError(w, "Stream", err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)

	// Headers are gone at this point; failures can only be logged.
	if _, err := runner.New(runner.WithHandler(h), runner.WithLogger(s.Logger)).Run(r.Context(), stream); err != nil {
		s.Logger.Warn("Stream: response cut short", "puzzle", p.Key(), "err", err)
	}
}

// bindDisks binds the {disks} path parameter the way generated servers do.
func (s *Server) bindDisks(w http.ResponseWriter, r *http.Request) (int, bool) {
	var disks int
	err := runtime.BindStyledParameterWithOptions("simple", "disks", chi.URLParam(r, "disks"), &disks,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter disks: %v", err))
		return 0, false
	}
	return disks, true
}

// decodeBody reads a JSON object and validates it against a named schema.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, schema string) (map[string]any, bool) {
	var body map[string]any
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		s.Logger.Warn("Invalid request body", "path", r.URL.Path, "error", err)
		return nil, false
	}
	ref, ok := s.spec.Components.Schemas[schema]
	if !ok || ref.Value == nil {
		writeError(w, http.StatusInternalServerError, "schema unavailable")
		s.Logger.Error("Missing schema", "schema", schema)
		return nil, false
	}
	if err := ref.Value.VisitJSON(body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Request does not match %s schema: %v", schema, err))
		return nil, false
	}
	return body, true
}

func (s *Server) writeDomainError(w http.ResponseWriter, op string, err error) {
	if isInvalidInput(err) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, fmt.Sprintf("%s error: %v", op, err))
	s.Logger.Error(op+" failed", "error", err)
}

func isInvalidInput(err error) bool {
	for _, target := range []error{
		domain.ErrNegativeDisks,
		domain.ErrTooManyDisks,
		domain.ErrDuplicatePeg,
		domain.ErrEmptyPeg,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
