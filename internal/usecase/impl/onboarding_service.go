package impl

import (
	"context"
	"log/slog"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// onboardingService implements the OnboardingUsecase interface.
type onboardingService struct {
	sellers  repository.SellerProfileRepository
	stores   repository.StoreProfileRepository
	validate *validator.Validate
	logger   *slog.Logger
}

// NewOnboardingService is the constructor for onboardingService.
func NewOnboardingService(
	sellers repository.SellerProfileRepository,
	stores repository.StoreProfileRepository,
	logger *slog.Logger,
) usecase.OnboardingUsecase {
	return &onboardingService{
		sellers:  sellers,
		stores:   stores,
		validate: validator.New(),
		logger:   logger,
	}
}

// CreateSellerProfile creates the one-time seller record for the identity.
func (srv *onboardingService) CreateSellerProfile(ctx context.Context, identity *entity.Identity, input *usecase.CreateSellerProfileInput) (*entity.SellerProfile, error) {
	if identity == nil {
		return nil, errors.WithStack(domainerrors.ErrNotSignedIn)
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	srv.logger.Info("Creating seller profile", slog.String("uid", identity.UID))

	now := time.Now()
	profile := &entity.SellerProfile{
		UID:       identity.UID,
		Email:     identity.Email,
		RealName:  input.RealName,
		Nickname:  input.Nickname,
		StudentID: input.StudentID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.sellers.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, errors.WithStack(domainerrors.ErrSellerAlreadyExists)
		}

		return nil, errors.Wrap(err, "failed to create seller profile")
	}

	return profile, nil
}

// CreateOrUpdateStore upserts the storefront for the identity. Requires the
// seller profile to exist; store setup is onboarding step 2.
func (srv *onboardingService) CreateOrUpdateStore(ctx context.Context, identity *entity.Identity, input *usecase.UpsertStoreInput) (*entity.StoreProfile, error) {
	if identity == nil {
		return nil, errors.WithStack(domainerrors.ErrNotSignedIn)
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	category := entity.StoreCategory(input.Category)
	if !category.Valid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown store category: " + input.Category))
	}

	if _, err := srv.sellers.FindByUID(ctx, identity.UID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errors.WithStack(domainerrors.ErrSellerNotFound)
		}

		return nil, errors.Wrap(err, "failed to check seller profile")
	}

	srv.logger.Info("Upserting store profile", slog.String("sellerId", identity.UID))

	now := time.Now()
	store := &entity.StoreProfile{
		SellerID:   identity.UID,
		Name:       input.Name,
		Bio:        input.Bio,
		ProfilePic: input.ProfilePic,
		BannerPic:  input.BannerPic,
		Category:   category,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := srv.stores.Upsert(ctx, store); err != nil {
		return nil, errors.Wrap(err, "failed to upsert store profile")
	}

	return store, nil
}
