package middleware

import (
	"strings"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// identityKey is the echo context key the verified identity is stored under.
const identityKey = "identity"

// AuthMiddleware validates Firebase ID tokens on seller routes.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	provider service.AuthProvider
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier, provider service.AuthProvider) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, provider: provider}
}

// Authenticate validates the Bearer ID token and requires it to belong to
// the identity the session state machine is currently tracking.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		identity, err := m.verifier.Verify(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		current := m.provider.Current()
		if current == nil || current.UID != identity.UID {
			return response.Forbidden(c, "SESSION_MISMATCH", "Token does not match the active session")
		}

		c.Set(identityKey, identity)

		return next(c)
	}
}

// IdentityFromContext returns the identity stored by Authenticate, or nil.
func IdentityFromContext(c echo.Context) *entity.Identity {
	identity, _ := c.Get(identityKey).(*entity.Identity)

	return identity
}
