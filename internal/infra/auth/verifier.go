package auth

import (
	"context"
	"log/slog"
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
)

// tokenVerifier validates Firebase ID tokens and enforces the allowed
// email domain before an identity ever reaches the state hub.
type tokenVerifier struct {
	client        *fbauth.Client
	allowedDomain string
	logger        *slog.Logger
}

// NewTokenVerifier is the constructor for tokenVerifier.
func NewTokenVerifier(ctx context.Context, app *firebase.App, cfg *config.Config, logger *slog.Logger) (service.TokenVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create firebase auth client")
	}

	allowedDomain := ""
	if cfg.Authn != nil {
		allowedDomain = strings.ToLower(cfg.Authn.AllowedEmailDomain)
	}

	return &tokenVerifier{
		client:        client,
		allowedDomain: allowedDomain,
		logger:        logger,
	}, nil
}

// Verify validates the ID token and maps it to an Identity.
func (v *tokenVerifier) Verify(ctx context.Context, idToken string) (*entity.Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		v.logger.Debug("id token verification failed", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrTokenInvalid)
	}

	email, _ := token.Claims["email"].(string)
	if v.allowedDomain != "" && !strings.HasSuffix(strings.ToLower(email), v.allowedDomain) {
		return nil, errors.WithStack(domainerrors.ErrEmailDomainNotAllowed)
	}

	name, _ := token.Claims["name"].(string)

	return &entity.Identity{
		UID:   token.UID,
		Email: email,
		Name:  name,
	}, nil
}
