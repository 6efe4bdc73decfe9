package entity

// OnboardingState is the single derived stage that gates access to seller
// features. The four states are mutually exclusive for routing purposes.
type OnboardingState string

const (
	// StateSignedOut - no identity.
	StateSignedOut OnboardingState = "SIGNED_OUT"
	// StateNewUser - identity present, seller profile absent.
	StateNewUser OnboardingState = "NEW_USER"
	// StateNeedsStore - identity and seller present, store profile absent.
	StateNeedsStore OnboardingState = "NEEDS_STORE"
	// StateReady - all three records present.
	StateReady OnboardingState = "READY"
)

// DeriveOnboardingState maps the presence of the three session records to
// exactly one state. Presence is hierarchical: a seller without an identity
// or a store without a seller cannot occur through the fetch order, and the
// derivation ignores the lower record in that case.
func DeriveOnboardingState(hasIdentity, hasSeller, hasStore bool) OnboardingState {
	switch {
	case !hasIdentity:
		return StateSignedOut
	case !hasSeller:
		return StateNewUser
	case !hasStore:
		return StateNeedsStore
	default:
		return StateReady
	}
}
