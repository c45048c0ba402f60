package middleware

import (
	"horizon/config"
	deliverycontext "horizon/internal/delivery/context"
	"horizon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware provides middleware for session-cookie authentication.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	cfg    *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC, cfg: cfg}
}

// Authenticate resolves the session cookie to a user. A missing, unknown or
// expired cookie all surface as the same 401; the handler never learns which.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var rawToken string
		if cookie, err := c.Cookie(m.cfg.Session.CookieName); err == nil {
			rawToken = cookie.Value
		}

		user, session, err := m.authUC.ResolveSession(c.Request().Context(), rawToken)
		if err != nil {
			return errors.WithStack(err)
		}

		// Set user info on the context for handlers to use
		c.Set(deliverycontext.KeyUserID, user.ID)
		c.Set(deliverycontext.KeySessionID, session.ID)

		return next(c)
	}
}
