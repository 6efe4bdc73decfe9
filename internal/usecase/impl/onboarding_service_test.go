package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSellerInput() *usecase.CreateSellerProfileInput {
	return &usecase.CreateSellerProfileInput{
		RealName:  "Somchai Jaidee",
		Nickname:  "Chai",
		StudentID: "12345",
	}
}

func validStoreInput() *usecase.UpsertStoreInput {
	return &usecase.UpsertStoreInput{
		Name:       "Chai's Snacks",
		Bio:        "Homemade snacks every Friday",
		ProfilePic: "https://img.example/profile.png",
		Category:   string(entity.CategoryHomemade),
	}
}

func TestOnboardingService_CreateSellerProfile(t *testing.T) {
	sellers := newFakeSellerRepo()
	stores := newFakeStoreRepo()
	svc := NewOnboardingService(sellers, stores, newDiscardLogger())
	identity := testIdentity("u1")

	profile, err := svc.CreateSellerProfile(context.Background(), identity, validSellerInput())
	require.NoError(t, err)

	assert.Equal(t, identity.UID, profile.UID)
	assert.Equal(t, identity.Email, profile.Email)
	assert.Equal(t, "Somchai Jaidee", profile.RealName)
	assert.False(t, profile.CreatedAt.IsZero())
	assert.Equal(t, profile.CreatedAt, profile.UpdatedAt)
}

func TestOnboardingService_CreateSellerProfile_NotSignedIn(t *testing.T) {
	svc := NewOnboardingService(newFakeSellerRepo(), newFakeStoreRepo(), newDiscardLogger())

	_, err := svc.CreateSellerProfile(context.Background(), nil, validSellerInput())
	assert.ErrorIs(t, err, domainerrors.ErrNotSignedIn)
}

func TestOnboardingService_CreateSellerProfile_ValidationFailure(t *testing.T) {
	svc := NewOnboardingService(newFakeSellerRepo(), newFakeStoreRepo(), newDiscardLogger())

	input := validSellerInput()
	input.RealName = ""

	_, err := svc.CreateSellerProfile(context.Background(), testIdentity("u1"), input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestOnboardingService_CreateSellerProfile_AlreadyExists(t *testing.T) {
	sellers := newFakeSellerRepo()
	svc := NewOnboardingService(sellers, newFakeStoreRepo(), newDiscardLogger())
	identity := testIdentity("u1")

	_, err := svc.CreateSellerProfile(context.Background(), identity, validSellerInput())
	require.NoError(t, err)

	_, err = svc.CreateSellerProfile(context.Background(), identity, validSellerInput())
	assert.ErrorIs(t, err, domainerrors.ErrSellerAlreadyExists)
}

func TestOnboardingService_CreateOrUpdateStore(t *testing.T) {
	sellers := newFakeSellerRepo()
	stores := newFakeStoreRepo()
	svc := NewOnboardingService(sellers, stores, newDiscardLogger())
	identity := testIdentity("u1")
	sellers.put(&entity.SellerProfile{UID: identity.UID})

	store, err := svc.CreateOrUpdateStore(context.Background(), identity, validStoreInput())
	require.NoError(t, err)

	assert.Equal(t, identity.UID, store.SellerID)
	assert.Equal(t, entity.CategoryHomemade, store.Category)
}

func TestOnboardingService_CreateOrUpdateStore_RequiresSellerProfile(t *testing.T) {
	svc := NewOnboardingService(newFakeSellerRepo(), newFakeStoreRepo(), newDiscardLogger())

	_, err := svc.CreateOrUpdateStore(context.Background(), testIdentity("u1"), validStoreInput())
	assert.ErrorIs(t, err, domainerrors.ErrSellerNotFound)
}

func TestOnboardingService_CreateOrUpdateStore_UnknownCategory(t *testing.T) {
	sellers := newFakeSellerRepo()
	svc := NewOnboardingService(sellers, newFakeStoreRepo(), newDiscardLogger())
	identity := testIdentity("u1")
	sellers.put(&entity.SellerProfile{UID: identity.UID})

	input := validStoreInput()
	input.Category = "weapons"

	_, err := svc.CreateOrUpdateStore(context.Background(), identity, input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestOnboardingService_CreateOrUpdateStore_PreservesCreatedAt(t *testing.T) {
	sellers := newFakeSellerRepo()
	stores := newFakeStoreRepo()
	svc := NewOnboardingService(sellers, stores, newDiscardLogger())
	identity := testIdentity("u1")
	sellers.put(&entity.SellerProfile{UID: identity.UID})

	first, err := svc.CreateOrUpdateStore(context.Background(), identity, validStoreInput())
	require.NoError(t, err)

	input := validStoreInput()
	input.Name = "Chai's Snacks v2"
	second, err := svc.CreateOrUpdateStore(context.Background(), identity, input)
	require.NoError(t, err)

	assert.Equal(t, "Chai's Snacks v2", second.Name)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
}
