package predicate

import "sync"

// ProgramCache stores compiled programs. Keys are opaque strings built by the
// evaluators.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// MemoryCache is an unbounded ProgramCache safe for concurrent use.
type MemoryCache struct {
	mu       sync.RWMutex
	programs map[string]any
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{programs: map[string]any{}}
}

func (c *MemoryCache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.programs[key]
	return value, ok
}

func (c *MemoryCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.programs == nil {
		c.programs = map[string]any{}
	}
	c.programs[key] = value
}

// Len returns the number of cached programs.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.programs)
}
