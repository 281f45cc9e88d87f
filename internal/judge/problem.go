// Package judge binds the decision procedures to the contest I/O contract:
// read T, then solve each case in order and print one verdict block per case.
package judge

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"cpkit/internal/tokens"
)

var (
	// ErrUnknownProblem is returned by Lookup for unregistered names.
	ErrUnknownProblem = errors.New("unknown problem")
	// ErrLengthMismatch is returned when a string's length differs from its declared n.
	ErrLengthMismatch = errors.New("length mismatch")
)

// Problem reads one test case from r and writes its verdict to w.
type Problem interface {
	Name() string
	Summary() string
	Solve(r *tokens.Reader, w io.Writer) error
}

// Registry maps problem names to implementations.
type Registry struct {
	mu       sync.RWMutex
	problems map[string]Problem
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{problems: make(map[string]Problem)}
}

// Default returns a registry holding coloring, mex and sorting-game.
func Default() *Registry {
	reg := NewRegistry()
	for _, p := range []Problem{Coloring{}, Mex{}, SortingGame{}} {
		// Names are distinct constants.
		_ = reg.Register(p)
	}
	return reg
}

// Register adds p. Registering a name twice is an error.
func (r *Registry) Register(p Problem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.problems[p.Name()]; exists {
		return fmt.Errorf("problem %q already registered", p.Name())
	}
	r.problems[p.Name()] = p
	return nil
}

// Lookup returns the problem registered under name.
func (r *Registry) Lookup(name string) (Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.problems[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProblem, name)
	}
	return p, nil
}

// Names returns registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.problems))
	for name := range r.problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
