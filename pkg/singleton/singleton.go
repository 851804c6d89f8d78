// Package singleton implements the singleton pattern: a process-wide
// registry created lazily on first use. sync.Once plays the role the
// metaclass plays in dynamic languages.
package singleton

import "sync"

// Registry is the single shared instance. It maps names to values and is
// safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]string
}

var (
	instance *Registry
	once     sync.Once
)

// Instance returns the process-wide registry, creating it on first call.
// Every caller receives the same instance.
func Instance() *Registry {
	once.Do(func() {
		instance = &Registry{entries: map[string]string{}}
	})
	return instance
}

// Set stores a value under name.
func (r *Registry) Set(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = value
}

// Get returns the value stored under name.
func (r *Registry) Get(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[name]
	return v, ok
}

// Len returns the number of stored entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
