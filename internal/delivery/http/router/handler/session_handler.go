// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/infra/auth"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler exposes the session/onboarding state machine over HTTP.
type SessionHandler struct {
	session  usecase.SessionUsecase
	verifier service.TokenVerifier
	hub      *auth.StateHub
	logger   *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(session usecase.SessionUsecase, verifier service.TokenVerifier, hub *auth.StateHub, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		session:  session,
		verifier: verifier,
		hub:      hub,
		logger:   logger,
	}
}

// SignInInput carries the Firebase ID token from the sign-in popup.
type SignInInput struct {
	IDToken string `json:"id_token" validate:"required"`
}

// SessionView is the wire form of a session snapshot.
type SessionView struct {
	State     string                `json:"state"`
	Loading   bool                  `json:"loading"`
	Identity  *IdentityView         `json:"identity,omitempty"`
	Seller    *entity.SellerProfile `json:"seller,omitempty"`
	Store     *entity.StoreProfile  `json:"store,omitempty"`
	HasSeller bool                  `json:"has_seller"`
	HasStore  bool                  `json:"has_store"`
}

// IdentityView is the wire form of the signed-in identity.
type IdentityView struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func newSessionView(s usecase.Session) SessionView {
	view := SessionView{
		State:     string(s.State()),
		Loading:   s.Loading,
		Seller:    s.Seller,
		Store:     s.Store,
		HasSeller: s.Seller != nil,
		HasStore:  s.Store != nil,
	}
	if s.Identity != nil {
		view.Identity = &IdentityView{
			UID:   s.Identity.UID,
			Email: s.Identity.Email,
			Name:  s.Identity.Name,
		}
	}

	return view
}

// GetSession returns the current session snapshot.
func (h *SessionHandler) GetSession(c echo.Context) error {
	return response.Success(c, http.StatusOK, newSessionView(h.session.Snapshot()), "Session retrieved successfully")
}

// SignIn verifies the ID token and publishes the identity to the hub. The
// state machine picks it up through its subscription.
func (h *SessionHandler) SignIn(c echo.Context) error {
	var input *SignInInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "ID token is required")
	}

	identity, err := h.verifier.Verify(c.Request().Context(), input.IDToken)
	if err != nil {
		return errors.WithStack(err)
	}

	h.hub.SignIn(identity)

	return response.Success(c, http.StatusOK, newSessionView(h.session.Snapshot()), "Signed in successfully")
}

// SignOut publishes the signed-out state.
func (h *SessionHandler) SignOut(c echo.Context) error {
	h.hub.SignOut()

	return response.Success(c, http.StatusOK, newSessionView(h.session.Snapshot()), "Signed out successfully")
}

// Refresh re-runs the profile fetch sequence for the current identity.
func (h *SessionHandler) Refresh(c echo.Context) error {
	h.session.Refresh(c.Request().Context())

	return response.Success(c, http.StatusOK, newSessionView(h.session.Snapshot()), "Session refreshed")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
