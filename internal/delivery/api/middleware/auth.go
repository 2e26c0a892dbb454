package middleware

import (
	deliverycontext "blindauth/internal/delivery/context"
	domainerrors "blindauth/internal/domain/errors"
	"blindauth/internal/domain/service"
	"blindauth/internal/errors"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware checks bearer tokens against the session registry.
type AuthMiddleware struct {
	sessions service.SessionRegistry
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions service.SessionRegistry) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate rejects the request with UNAUTHORIZED unless it carries an
// active bearer token. It runs before the body is bound.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := deliverycontext.ParseBearerToken(c.Request())
		if !m.sessions.Validate(c.Request().Context(), token) {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		deliverycontext.SetBearerToken(c, token)

		return next(c)
	}
}

// ExtractBearer stores whatever bearer token the request carries without
// checking it. Logout decides for itself what an unknown token means.
func (m *AuthMiddleware) ExtractBearer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		deliverycontext.SetBearerToken(c, deliverycontext.ParseBearerToken(c.Request()))

		return next(c)
	}
}
