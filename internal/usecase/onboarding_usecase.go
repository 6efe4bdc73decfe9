package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// OnboardingUsecase performs the two onboarding writes. The caller passes
// the active identity explicitly; after a successful write it should
// invoke SessionUsecase.Refresh so the derived state catches up.
type OnboardingUsecase interface {
	// CreateSellerProfile creates the one-time seller record for the
	// identity. Fails with a conflict when the profile already exists.
	CreateSellerProfile(ctx context.Context, identity *entity.Identity, input *CreateSellerProfileInput) (*entity.SellerProfile, error)

	// CreateOrUpdateStore upserts the storefront keyed by the identity UID.
	CreateOrUpdateStore(ctx context.Context, identity *entity.Identity, input *UpsertStoreInput) (*entity.StoreProfile, error)
}

// --- Input DTOs ---

// CreateSellerProfileInput defines the data collected in onboarding step 1.
type CreateSellerProfileInput struct {
	RealName  string `json:"real_name" validate:"required,max=100"`
	Nickname  string `json:"nickname" validate:"required,max=50"`
	StudentID string `json:"student_id" validate:"required,max=20"`
}

// UpsertStoreInput defines the data collected in onboarding step 2 and on
// later store edits.
type UpsertStoreInput struct {
	Name       string `json:"name" validate:"required,max=100"`
	Bio        string `json:"bio" validate:"max=500"`
	ProfilePic string `json:"profile_pic" validate:"required,url"`
	BannerPic  string `json:"banner_pic" validate:"omitempty,url"`
	Category   string `json:"category" validate:"required"`
}
