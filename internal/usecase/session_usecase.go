// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// Session is the published composite auth/onboarding state. It is a value
// snapshot: consumers read it and must not mutate the referenced records.
type Session struct {
	Identity *entity.Identity
	Seller   *entity.SellerProfile
	Store    *entity.StoreProfile
	Loading  bool
}

// State derives the onboarding state from record presence. Loading is the
// readiness gate: while Loading is true the derived state is provisional
// and routing decisions must wait.
func (s Session) State() entity.OnboardingState {
	return entity.DeriveOnboardingState(s.Identity != nil, s.Seller != nil, s.Store != nil)
}

// IsNewUser reports identity present with no seller profile.
func (s Session) IsNewUser() bool {
	return s.State() == entity.StateNewUser
}

// NeedsStoreSetup reports seller present with no store profile.
func (s Session) NeedsStoreSetup() bool {
	return s.State() == entity.StateNeedsStore
}

// ReadyForDashboard reports all three records present.
func (s Session) ReadyForDashboard() bool {
	return s.State() == entity.StateReady
}

// SessionUsecase owns the session/onboarding state machine. A single
// long-lived instance subscribes to the auth provider and republishes the
// derived state; all mutation goes through the subscription or Refresh.
type SessionUsecase interface {
	// Start subscribes to the auth provider. The subscription fires once
	// immediately, so a sequence for the current auth state begins before
	// Start returns.
	Start(ctx context.Context) error

	// Stop detaches from the auth provider.
	Stop()

	// Snapshot returns the current published session.
	Snapshot() Session

	// Refresh re-runs the profile fetch sequence for the currently-known
	// identity without waiting for an auth event. Used right after an
	// onboarding write so the derived state reflects it immediately.
	Refresh(ctx context.Context)

	// OnChange registers a callback invoked after every committed state
	// change, and returns an unsubscribe function.
	OnChange(fn func(Session)) (unsubscribe func())
}
