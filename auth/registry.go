package auth

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Registry is a thread-safe registry of Authenticators keyed by scheme.
// Projects register one authenticator per credential type and dispatch
// incoming requests through the registry: the authenticator whose scheme
// matches the request's marker runs, every other request gets Pass.
//
// Usage:
//
//	reg := auth.NewRegistry()
//	reg.Register(jwtAuth)
//	reg.Register(apiKeyAuth)
//
//	res := reg.Authenticate(ctx, req)
type Registry struct {
	mu             sync.RWMutex
	authenticators map[string]*Authenticator
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		authenticators: make(map[string]*Authenticator),
	}
}

// Register adds an authenticator under its scheme. Registering a second
// authenticator for the same scheme replaces the first.
func (r *Registry) Register(a *Authenticator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.authenticators[a.Scheme()] = a
}

// Get returns the authenticator registered for the given scheme.
func (r *Registry) Get(scheme string) (*Authenticator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.authenticators[scheme]
	return a, ok
}

// MustGet returns the authenticator for the given scheme.
// Panics if the scheme is not registered.
func (r *Registry) MustGet(scheme string) *Authenticator {
	a, ok := r.Get(scheme)
	if !ok {
		panic(fmt.Sprintf("auth: scheme %q not registered", scheme))
	}
	return a
}

// Schemes returns all registered scheme names in sorted order.
func (r *Registry) Schemes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	schemes := make([]string, 0, len(r.authenticators))
	for s := range r.authenticators {
		schemes = append(schemes, s)
	}
	sort.Strings(schemes)
	return schemes
}

// Authenticate dispatches the request to the authenticator matching its
// scheme marker. A request whose marker matches no registered scheme gets
// the Pass outcome, the same signal an individual authenticator gives for
// a foreign scheme.
func (r *Registry) Authenticate(ctx context.Context, req Request) Result {
	a, ok := r.Get(req.Scheme)
	if !ok {
		return Result{Outcome: Pass}
	}
	return a.Authenticate(ctx, req)
}
