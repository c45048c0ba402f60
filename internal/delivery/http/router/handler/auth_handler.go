// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"horizon/config"
	deliverycontext "horizon/internal/delivery/context"
	"horizon/internal/delivery/http/response"
	"horizon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler holds dependencies for identity-related handlers.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		cfg:    params.Config,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents the request body for email/password login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest represents the request body for Google Sign-In.
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// EmailRequest represents a request identified only by an email address.
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetConfirmRequest represents the request body for confirming a password reset.
type ResetConfirmRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// sessionResponse is the body returned whenever a session is opened. The raw
// token travels only in the cookie; the body carries the user and expiry.
type sessionResponse struct {
	User      any       `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "User registered successfully")
}

// Login handles the email/password login request and opens a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output)

	return response.Success(c, http.StatusOK, sessionResponse{
		User:      output.User,
		ExpiresAt: output.ExpiresAt,
	}, "Login successful")
}

// GoogleLogin handles Google Sign-In, creating the account on first sight.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req GoogleLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid Google login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.authUC.GoogleLogin(c.Request().Context(), &usecase.GoogleLoginInput{
		IDToken: req.IDToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output)

	return response.Success(c, http.StatusOK, sessionResponse{
		User:      output.User,
		ExpiresAt: output.ExpiresAt,
	}, "Google login successful")
}

// Logout revokes the session behind the cookie and clears it. Always
// succeeds; logging out an already-dead session is not an error.
func (h *AuthHandler) Logout(c echo.Context) error {
	var rawToken string
	if cookie, err := c.Cookie(h.cfg.Session.CookieName); err == nil {
		rawToken = cookie.Value
	}

	if err := h.authUC.Logout(c.Request().Context(), rawToken); err != nil {
		return errors.WithStack(err)
	}

	h.clearSessionCookie(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// RequestMagicLink mails a single-use login link. The response is identical
// whether or not the email has an account.
func (h *AuthHandler) RequestMagicLink(c echo.Context) error {
	var req EmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid magic link input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.authUC.RequestMagicLink(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"message": "If the account exists, a login link has been mailed",
	}, "Magic link requested")
}

// MagicLinkQR renders a magic-link consume URL as a PNG QR code so another
// device can pick up the login.
func (h *AuthHandler) MagicLinkQR(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "INVALID_INPUT", "email query parameter is required")
	}

	png, err := h.authUC.MagicLinkQR(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ConsumeMagicLink destroys the single-use token and opens a session.
func (h *AuthHandler) ConsumeMagicLink(c echo.Context) error {
	rawToken := c.QueryParam("token")
	if rawToken == "" {
		return response.BadRequest(c, "INVALID_INPUT", "token query parameter is required")
	}

	output, err := h.authUC.ConsumeMagicLink(c.Request().Context(), rawToken)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output)

	return response.Success(c, http.StatusOK, sessionResponse{
		User:      output.User,
		ExpiresAt: output.ExpiresAt,
	}, "Login successful")
}

// RequestPasswordReset mails a single-use reset link, with the same
// anti-oracle response as RequestMagicLink.
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req EmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password reset input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.authUC.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"message": "If the account exists, a reset link has been mailed",
	}, "Password reset requested")
}

// ConfirmPasswordReset burns the reset token, updates the password and
// revokes every session of the user.
func (h *AuthHandler) ConfirmPasswordReset(c echo.Context) error {
	var req ResetConfirmRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset confirmation input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.authUC.ConfirmPasswordReset(c.Request().Context(), &usecase.ConfirmPasswordResetInput{
		RawToken:    req.Token,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	h.clearSessionCookie(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password updated, please log in again"}, "Password reset successful")
}

// Me returns the current user's identity.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	user, err := h.authUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

func (h *AuthHandler) setSessionCookie(c echo.Context, output *usecase.SessionOutput) {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    output.RawToken,
		Path:     "/",
		Expires:  output.ExpiresAt,
		HttpOnly: true,
		Secure:   !h.cfg.Env.Debug,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   !h.cfg.Env.Debug,
		SameSite: http.SameSiteLaxMode,
	})
}

// getUserID extracts the authenticated user ID set by the auth middleware.
func getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get(deliverycontext.KeyUserID)
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_SESSION", "No authenticated session")
	}

	return userID, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
