package env

import (
	"errors"
)

// ErrUndefined is returned when retrieving or assigning to an undefined variable
var ErrUndefined = errors.New("undefined variable")

// Environment holds a map of key-value pairs as
// well as a reference to an enclosing environment
type Environment[V any] struct {
	enclosing *Environment[V]
	values    map[string]V
}

// New returns a new environment enclosed by the given environment.
// A nil enclosing environment makes the new environment a root.
func New[V any](enclosing *Environment[V]) *Environment[V] {
	return &Environment[V]{enclosing: enclosing, values: make(map[string]V)}
}

// Declare stores a key-value pair in this environment. An existing
// pair with the same name in this environment is overwritten; pairs
// in enclosing environments are shadowed, not changed.
func (e *Environment[V]) Declare(name string, value V) {
	e.values[name] = value
}

// Assign sets the value of the key-value pair if the key already exists.
// If it doesn't exist in this environment, it checks the enclosing environment
// and tries to assign the value there. If there are no other enclosing
// environments to check and the key-value pair has not been assigned, it returns
// an ErrUndefined.
func (e *Environment[V]) Assign(name string, value V) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name]; ok {
			env.values[name] = value
			return nil
		}
	}
	return ErrUndefined
}

// Lookup returns the value of the pair with the given name
// in this environment or its enclosing environments. If
// there are no other enclosing environments and the value
// has not been found, it returns an ErrUndefined.
func (e *Environment[V]) Lookup(name string) (V, error) {
	for env := e; env != nil; env = env.enclosing {
		if val, ok := env.values[name]; ok {
			return val, nil
		}
	}
	var zero V
	return zero, ErrUndefined
}
