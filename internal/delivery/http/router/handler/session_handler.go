package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "horizon/internal/delivery/context"
	"horizon/internal/delivery/http/response"
	"horizon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler holds dependencies for session-management handlers.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler.
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// ListSessions returns the user's live sessions, newest first.
func (h *SessionHandler) ListSessions(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	sessions, err := h.sessionUC.GetActiveSessions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessions, "Sessions retrieved successfully")
}

// RevokeSession ends one session after verifying ownership.
func (h *SessionHandler) RevokeSession(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	if err := h.sessionUC.RevokeSession(c.Request().Context(), userID, sessionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Session revoked"}, "Session revoked successfully")
}

// RevokeOtherSessions ends every session except the one making the request.
func (h *SessionHandler) RevokeOtherSessions(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	sessionIDVal := c.Get(deliverycontext.KeySessionID)
	currentSessionID, ok := sessionIDVal.(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "No authenticated session")
	}

	if err := h.sessionUC.RevokeAllOtherSessions(c.Request().Context(), userID, currentSessionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Other sessions revoked"}, "Other sessions revoked successfully")
}

// RevokeAllSessions ends every session of the user, the current one included.
func (h *SessionHandler) RevokeAllSessions(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	if err := h.sessionUC.RevokeAllSessions(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "All sessions revoked"}, "All sessions revoked successfully")
}
