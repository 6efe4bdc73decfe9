// Package auth provides the in-process auth state hub and token
// verification infrastructure.
package auth

import (
	"sync"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
)

// StateHub is the in-process implementation of service.AuthProvider. The
// delivery layer feeds it verified identities on sign-in/sign-out; the
// session machine subscribes to it. Subscribe fires once immediately with
// the current state, matching the external auth provider contract.
type StateHub struct {
	mu      sync.Mutex
	current *entity.Identity
	subs    map[uint64]service.AuthChangeFunc
	nextID  uint64
}

// NewStateHub creates an empty hub in the signed-out state.
func NewStateHub() *StateHub {
	return &StateHub{
		subs: make(map[uint64]service.AuthChangeFunc),
	}
}

// Subscribe registers a callback and fires it once immediately with the
// current state. The returned function removes the subscription.
func (h *StateHub) Subscribe(onChange service.AuthChangeFunc) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = onChange
	current := h.current
	h.mu.Unlock()

	onChange(current)

	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

// Current returns the identity of the signed-in user, or nil.
func (h *StateHub) Current() *entity.Identity {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.current
}

// SignIn publishes a new identity to all subscribers.
func (h *StateHub) SignIn(identity *entity.Identity) {
	h.broadcast(identity)
}

// SignOut publishes the signed-out state to all subscribers.
func (h *StateHub) SignOut() {
	h.broadcast(nil)
}

// broadcast updates the current state and invokes subscribers outside the
// hub lock, so a subscriber blocked in a slow fetch cannot deadlock a
// subsequent state change.
func (h *StateHub) broadcast(identity *entity.Identity) {
	h.mu.Lock()
	h.current = identity
	subs := make([]service.AuthChangeFunc, 0, len(h.subs))
	for _, fn := range h.subs {
		subs = append(subs, fn)
	}
	h.mu.Unlock()

	for _, fn := range subs {
		fn(identity)
	}
}
