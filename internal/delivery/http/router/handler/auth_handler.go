// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"ladle/config"
	httpmiddleware "ladle/internal/delivery/http/middleware"
	"ladle/internal/delivery/http/response"
	domainerrors "ladle/internal/domain/errors"
	"ladle/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for account and session handlers.
type AuthHandler struct {
	uc         usecase.AuthUsecase
	logger     *slog.Logger
	cookieName string
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		uc:         uc,
		logger:     logger,
		cookieName: cfg.Session.CookieName,
	}
}

// Signup handles account registration. A successful signup is also a login:
// the response carries the session cookie.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusUnprocessableEntity, "Username and password required")
	}

	output, err := h.uc.Signup(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.SessionToken)

	return c.JSON(http.StatusCreated, response.NewUserResponse(output.User))
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusUnauthorized, "Invalid username or password")
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.SessionToken)

	return c.JSON(http.StatusOK, response.NewUserResponse(output.User))
}

// Logout destroys the presented session and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	token := httpmiddleware.ReadSessionToken(c, h.cookieName)

	if err := h.uc.Logout(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	h.clearSessionCookie(c)

	return c.NoContent(http.StatusNoContent)
}

// LogoutAll destroys every session of the authenticated user.
func (h *AuthHandler) LogoutAll(c echo.Context) error {
	token := httpmiddleware.ReadSessionToken(c, h.cookieName)

	if err := h.uc.LogoutAll(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	h.clearSessionCookie(c)

	return c.NoContent(http.StatusNoContent)
}

// CheckSession reports who the session belongs to. An invalid session
// answers 401 with an empty JSON object rather than an error body.
func (h *AuthHandler) CheckSession(c echo.Context) error {
	token := httpmiddleware.ReadSessionToken(c, h.cookieName)

	user, err := h.uc.CheckSession(c.Request().Context(), token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnauthorized) {
			return response.Empty(c, http.StatusUnauthorized)
		}

		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewUserResponse(user))
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
