package entity

import "time"

// SellerProfile is the first-party record created once per identity during
// onboarding step 1. Its existence is the sole signal distinguishing a new
// user from a returning seller.
type SellerProfile struct {
	UID       string    // Equals the identity UID; document key in the data service.
	Email     string    // Copied from the identity at creation time.
	RealName  string    // The seller's real name.
	Nickname  string    // Public nickname shown on the storefront.
	StudentID string    // School student id, collected during onboarding.
	CreatedAt time.Time // Timestamp of profile creation.
	UpdatedAt time.Time // Timestamp of the last modification.
}
