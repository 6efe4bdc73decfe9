// Package service defines interfaces for external capabilities the
// application depends on. Implementations live under internal/infra.
package service

import (
	"context"

	"bazaar/internal/domain/entity"
)

// AuthChangeFunc receives the new auth state: a concrete identity on
// sign-in, nil on sign-out.
type AuthChangeFunc func(identity *entity.Identity)

// AuthProvider publishes auth state changes. Subscribe fires the callback
// once immediately with the current state, then on every sign-in/sign-out,
// and returns an unsubscribe function.
type AuthProvider interface {
	Subscribe(onChange AuthChangeFunc) (unsubscribe func())
	Current() *entity.Identity
}

// TokenVerifier validates a provider-issued ID token and maps it to an
// Identity. Implementations enforce the allowed email domain; a token for
// a disallowed address verifies cryptographically but is still rejected.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*entity.Identity, error)
}
