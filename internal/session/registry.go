package session

import "sync"

// Factory builds the manager for a client ID
type Factory func(clientID string) *Manager

// Registry keeps one Manager per client
type Registry struct {
	mu       sync.Mutex
	managers map[string]*Manager
	factory  Factory
	max      int
}

// NewRegistry creates a registry holding at most max managers (0 means unbounded).
// Evicted managers lose only their in-memory state; the session itself lives in the store.
func NewRegistry(factory Factory, max int) *Registry {
	return &Registry{
		managers: make(map[string]*Manager),
		factory:  factory,
		max:      max,
	}
}

// Get returns the manager for clientID, creating it on first use
func (r *Registry) Get(clientID string) *Manager {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.managers[clientID]; ok {
		return m
	}
	if r.max > 0 && len(r.managers) >= r.max {
		for id := range r.managers {
			delete(r.managers, id)
			break
		}
	}
	m := r.factory(clientID)
	r.managers[clientID] = m
	return m
}

// Len returns the number of live managers
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.managers)
}
