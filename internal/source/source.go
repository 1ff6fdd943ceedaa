package source

import (
	"context"
	"fmt"

	"github.com/Ahmed-Elghobashy/Hitachi-venture-case/internal/model"
)

// Parser turns raw portfolio-page markup into company records.
// Implementations are best-effort: entries that cannot yield a name are
// skipped, never fatal, and document order is preserved.
type Parser interface {
	// Name returns the source identifier stamped on emitted records ("EIP", "SET").
	Name() string

	// Parse extracts zero or more companies from the markup.
	Parse(ctx context.Context, markup string) ([]model.Company, error)
}

// Fetcher resolves a source location (URL or local path) to markup text.
type Fetcher interface {
	Fetch(ctx context.Context, location string) (string, error)
}

// Constructor builds a Parser from the fetcher it may need for follow-up
// page loads (the SET parser reads per-company profile pages).
type Constructor func(f Fetcher) Parser

var registry = map[string]Constructor{}

// Register adds a parser constructor under the given source name.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// Get returns the parser constructor for the given source name.
func Get(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown portfolio source: %s", name)
	}
	return ctor, nil
}

// Sources returns the names of all registered portfolio sources.
func Sources() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
