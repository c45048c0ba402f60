package handler

import (
	"log/slog"
	"net/http"

	"horizon/internal/delivery/http/response"
	"horizon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PresenceHandlerParams holds dependencies for PresenceHandler, injected by Fx.
type PresenceHandlerParams struct {
	fx.In

	PresenceUC usecase.PresenceUsecase
	Logger     *slog.Logger
}

// PresenceHandler holds dependencies for liveness handlers.
type PresenceHandler struct {
	presenceUC usecase.PresenceUsecase
	logger     *slog.Logger
}

// NewPresenceHandler is the constructor for PresenceHandler.
func NewPresenceHandler(params PresenceHandlerParams) *PresenceHandler {
	return &PresenceHandler{
		presenceUC: params.PresenceUC,
		logger:     params.Logger,
	}
}

// QueryPresenceRequest represents the request body for a presence lookup.
type QueryPresenceRequest struct {
	UserIDs []uuid.UUID `json:"user_ids" validate:"required,min=1,max=100"`
}

// Heartbeat records that the caller is online right now.
func (h *PresenceHandler) Heartbeat(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	if err := h.presenceUC.Touch(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// QueryPresence reports liveness for the requested users, in request order.
// Unknown users simply come back offline.
func (h *PresenceHandler) QueryPresence(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return err
	}

	var req QueryPresenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid presence query input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	statuses, err := h.presenceUC.GetPresence(c.Request().Context(), req.UserIDs)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, statuses, "Presence retrieved successfully")
}
