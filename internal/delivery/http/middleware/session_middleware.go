// Package middleware contains HTTP middleware for the echo delivery.
package middleware

import (
	"net/http"

	"ladle/config"
	domainerrors "ladle/internal/domain/errors"
	"ladle/internal/delivery/http/response"
	"ladle/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware authenticates requests by the session cookie.
type SessionMiddleware struct {
	sessions   service.SessionStore
	cookieName string
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessions service.SessionStore, cfg *config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		sessions:   sessions,
		cookieName: cfg.Session.CookieName,
	}
}

// Authenticate resolves the session cookie to a user and stores the user ID
// on the request context. Requests without a live session get 401 with the
// generic message; nothing distinguishes a missing cookie from a stale one.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := ReadSessionToken(c, m.cookieName)
		if token == "" {
			return response.Error(c, http.StatusUnauthorized, domainerrors.ErrUnauthorized.Message())
		}

		userID, err := m.sessions.Resolve(c.Request().Context(), token)
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, domainerrors.ErrUnauthorized.Message())
		}

		c.Set("userID", userID)

		return next(c)
	}
}

// ReadSessionToken returns the raw session token from the request cookie, or
// "" when the cookie is absent.
func ReadSessionToken(c echo.Context, cookieName string) string {
	cookie, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}
