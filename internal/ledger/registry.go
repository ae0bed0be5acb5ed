package ledger

import "strings"

// Registry maintains the set of known participant names in insertion order.
// It performs no locking; callers serialize access (see service.Tracker).
type Registry struct {
	names []string
	index map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds a participant name, trimming surrounding whitespace.
// Registering an existing name is a no-op that returns the existing name.
// The second return reports whether the name was newly added.
func (r *Registry) Register(name string) (string, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false, ErrInvalidName
	}
	if _, ok := r.index[name]; ok {
		return name, false, nil
	}
	r.index[name] = len(r.names)
	r.names = append(r.names, name)
	return name, true, nil
}

// Exists reports whether the trimmed name is registered.
func (r *Registry) Exists(name string) bool {
	_, ok := r.index[strings.TrimSpace(name)]
	return ok
}

// List returns the registered names in insertion order.
func (r *Registry) List() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Order returns the insertion position of name, or -1 if unregistered.
// Settlement planning uses this for deterministic tie-breaking.
func (r *Registry) Order(name string) int {
	if i, ok := r.index[name]; ok {
		return i
	}
	return -1
}

// Len returns the number of registered participants.
func (r *Registry) Len() int {
	return len(r.names)
}
