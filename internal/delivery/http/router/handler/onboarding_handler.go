package handler

import (
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OnboardingHandler exposes the two onboarding writes.
type OnboardingHandler struct {
	onboarding usecase.OnboardingUsecase
	session    usecase.SessionUsecase
}

// NewOnboardingHandler is the constructor for OnboardingHandler, injected by Fx.
func NewOnboardingHandler(onboarding usecase.OnboardingUsecase, session usecase.SessionUsecase) *OnboardingHandler {
	return &OnboardingHandler{
		onboarding: onboarding,
		session:    session,
	}
}

// CreateSellerProfile handles the one-time seller registration, then
// refreshes the session so the derived state reflects the new record.
func (h *OnboardingHandler) CreateSellerProfile(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return errors.WithStack(domainerrors.ErrNotSignedIn)
	}

	var input *usecase.CreateSellerProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid seller profile input")
	}

	profile, err := h.onboarding.CreateSellerProfile(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.session.Refresh(c.Request().Context())

	return response.Success(c, http.StatusCreated, profile, "Seller profile created successfully")
}

// UpsertStore handles storefront creation and later edits, then refreshes
// the session.
func (h *OnboardingHandler) UpsertStore(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return errors.WithStack(domainerrors.ErrNotSignedIn)
	}

	var input *usecase.UpsertStoreInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}

	store, err := h.onboarding.CreateOrUpdateStore(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.session.Refresh(c.Request().Context())

	return response.Success(c, http.StatusOK, store, "Store saved successfully")
}
