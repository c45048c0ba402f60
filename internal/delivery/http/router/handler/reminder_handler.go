package handler

import (
	"log/slog"
	"net/http"
	"time"

	"horizon/internal/delivery/http/response"
	"horizon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReminderHandlerParams holds dependencies for ReminderHandler, injected by Fx.
type ReminderHandlerParams struct {
	fx.In

	ReminderUC usecase.ReminderUsecase
	Logger     *slog.Logger
}

// ReminderHandler holds dependencies for reminder handlers.
type ReminderHandler struct {
	reminderUC usecase.ReminderUsecase
	logger     *slog.Logger
}

// NewReminderHandler is the constructor for ReminderHandler.
func NewReminderHandler(params ReminderHandlerParams) *ReminderHandler {
	return &ReminderHandler{
		reminderUC: params.ReminderUC,
		logger:     params.Logger,
	}
}

// ReminderRequest represents the request body for creating or updating a reminder.
type ReminderRequest struct {
	Title string    `json:"title" validate:"required,max=200"`
	Body  string    `json:"body"`
	DueAt time.Time `json:"due_at" validate:"required"`
}

// CreateReminder schedules a reminder for the caller.
func (h *ReminderHandler) CreateReminder(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req ReminderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reminder input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	reminder, err := h.reminderUC.CreateReminder(c.Request().Context(), userID, &usecase.CreateReminderInput{
		Title: req.Title,
		Body:  req.Body,
		DueAt: req.DueAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, reminder, "Reminder created successfully")
}

// GetReminder retrieves one of the caller's reminders.
func (h *ReminderHandler) GetReminder(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	reminderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid reminder ID")
	}

	reminder, err := h.reminderUC.GetReminder(c.Request().Context(), userID, reminderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reminder, "Reminder retrieved successfully")
}

// ListReminders retrieves the caller's reminders, soonest due first.
func (h *ReminderHandler) ListReminders(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	reminders, err := h.reminderUC.ListReminders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reminders, "Reminders retrieved successfully")
}

// UpdateReminder reschedules a reminder; moving the due time re-arms one
// that already fired.
func (h *ReminderHandler) UpdateReminder(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	reminderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid reminder ID")
	}

	var req ReminderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reminder input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	reminder, err := h.reminderUC.UpdateReminder(c.Request().Context(), userID, reminderID, &usecase.UpdateReminderInput{
		Title: req.Title,
		Body:  req.Body,
		DueAt: req.DueAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reminder, "Reminder updated successfully")
}

// DeleteReminder removes one of the caller's reminders.
func (h *ReminderHandler) DeleteReminder(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	reminderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid reminder ID")
	}

	if err := h.reminderUC.DeleteReminder(c.Request().Context(), userID, reminderID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Reminder deleted"}, "Reminder deleted successfully")
}
