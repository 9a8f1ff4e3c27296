package sessioncontext

import (
	"fmt"
	"sync"
)

// InMemoryRepo is an in-memory implementation of Repo
type InMemoryRepo struct {
	mu       sync.RWMutex
	contexts map[string]Context
}

// NewInMemoryRepo creates a new in-memory session context repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		contexts: make(map[string]Context),
	}
}

// Upsert creates or replaces the context for a session. Partially
// populated contexts are rejected so that no session is ever observably
// half-authenticated.
func (r *InMemoryRepo) Upsert(sessionID string, ctx Context) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is required")
	}
	if !ctx.Valid() {
		return fmt.Errorf("refusing to store a partial session context")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.contexts[sessionID] = ctx
	return nil
}

// Get retrieves the context for a session id
func (r *InMemoryRepo) Get(sessionID string) (Context, error) {
	if sessionID == "" {
		return Context{}, fmt.Errorf("sessionID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ctx, ok := r.contexts[sessionID]
	if !ok {
		return Context{}, ErrNotFound
	}

	return ctx, nil
}

// Delete removes the context for a session id
func (r *InMemoryRepo) Delete(sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.contexts, sessionID)
	return nil
}
