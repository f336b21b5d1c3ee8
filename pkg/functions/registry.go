package functions

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrFunctionNotFound is returned when a name has no registered definition.
	ErrFunctionNotFound = errors.New("functions: function not found")
	// ErrInvalidArgument is returned when an argument cannot be used by a
	// function (for example a submit call without host globals).
	ErrInvalidArgument = errors.New("functions: invalid argument")
)

// Func is the loosely typed signature used by the host form runtime.
type Func func(ctx context.Context, args ...any) (any, error)

// Definition describes a named form function.
type Definition struct {
	Name        string
	Description string
	Params      []string
	Call        Func
}

// Registry stores form functions by name, providing discovery and duplication
// safeguards. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Definition
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		funcs: make(map[string]Definition),
	}
}

// Register adds a definition by its Name. Duplicate names return an error.
func (r *Registry) Register(def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("functions: function name is required")
	}
	if def.Call == nil {
		return fmt.Errorf("functions: function %q has no implementation", def.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.funcs[def.Name]; exists {
		return fmt.Errorf("functions: function %q already registered", def.Name)
	}

	def.Params = append([]string(nil), def.Params...)
	r.funcs[def.Name] = def
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(def Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Get retrieves a definition by name.
func (r *Registry) Get(name string) (Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.funcs[name]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrFunctionNotFound, name)
	}
	return def, nil
}

// Call invokes the named function with args.
func (r *Registry) Call(ctx context.Context, name string, args ...any) (any, error) {
	def, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return def.Call(ctx, args...)
}

// List returns a sorted list of function names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a function is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.funcs[name]
	return ok
}
