package session

import "sync"

// Registry tracks the live controller behind each session token. A session
// owns exactly one controller; its cart lives and dies with it.
type Registry struct {
	mu          sync.RWMutex
	controllers map[string]*Controller
}

func NewRegistry() *Registry {
	return &Registry{controllers: make(map[string]*Controller)}
}

func (r *Registry) Put(token string, c *Controller) {
	r.mu.Lock()
	r.controllers[token] = c
	r.mu.Unlock()
}

func (r *Registry) Get(token string) (*Controller, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.controllers[token]
	return c, ok
}

func (r *Registry) Delete(token string) {
	r.mu.Lock()
	delete(r.controllers, token)
	r.mu.Unlock()
}
