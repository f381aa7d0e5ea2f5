package file

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/hanoi/pkg/domain"
)

// Store implements ports.SolutionStore using the local filesystem.
// It stores solutions as JSON files in a configured directory.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".hanoi/solutions".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".hanoi", "solutions")
	}
	return &Store{BasePath: basePath}
}

// Peg labels are free-form, so keys are encoded before becoming file names.
func (s *Store) path(key string) string {
	return filepath.Join(s.BasePath, base64.RawURLEncoding.EncodeToString([]byte(key))+".json")
}

// Save persists the solution to a JSON file.
func (s *Store) Save(ctx context.Context, solution *domain.Solution) error {
	if solution == nil {
		return fmt.Errorf("solution cannot be nil")
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure solution directory: %w", err)
	}

	data, err := json.MarshalIndent(solution, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal solution: %w", err)
	}

	// Write to a temp file first so readers never see a partial solution.
	// Each writer gets its own temp file, so concurrent saves of one key never share it.
	tmp, err := os.CreateTemp(s.BasePath, "*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write solution file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write solution file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(solution.Puzzle.Key())); err != nil {
		return fmt.Errorf("failed to commit solution file: %w", err)
	}
	return nil
}

// Load retrieves the solution from its JSON file.
func (s *Store) Load(ctx context.Context, key string) (*domain.Solution, error) {
	if key == "" {
		return nil, fmt.Errorf("key cannot be empty")
	}

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrSolutionNotFound
		}
		return nil, fmt.Errorf("failed to read solution file: %w", err)
	}

	var solution domain.Solution
	if err := json.Unmarshal(data, &solution); err != nil {
		return nil, fmt.Errorf("failed to unmarshal solution: %w", err)
	}
	return &solution, nil
}

// Delete removes the solution file. Missing files are not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete solution file: %w", err)
	}
	return nil
}

// List returns the keys of all stored solutions.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list solution directory: %w", err)
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		raw, err := base64.RawURLEncoding.DecodeString(strings.TrimSuffix(name, ".json"))
		if err != nil {
			continue // not ours
		}
		keys = append(keys, string(raw))
	}
	slices.Sort(keys)
	return keys, nil
}
