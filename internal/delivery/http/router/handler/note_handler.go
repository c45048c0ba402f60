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

// NoteHandlerParams holds dependencies for NoteHandler, injected by Fx.
type NoteHandlerParams struct {
	fx.In

	NoteUC usecase.NoteUsecase
	Logger *slog.Logger
}

// NoteHandler holds dependencies for note handlers.
type NoteHandler struct {
	noteUC usecase.NoteUsecase
	logger *slog.Logger
}

// NewNoteHandler is the constructor for NoteHandler.
func NewNoteHandler(params NoteHandlerParams) *NoteHandler {
	return &NoteHandler{
		noteUC: params.NoteUC,
		logger: params.Logger,
	}
}

// NoteRequest represents the request body for creating or updating a note.
type NoteRequest struct {
	Title  string `json:"title" validate:"required,max=200"`
	Body   string `json:"body"`
	Pinned bool   `json:"pinned"`
}

// CreateNote creates a note owned by the caller.
func (h *NoteHandler) CreateNote(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req NoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	note, err := h.noteUC.CreateNote(c.Request().Context(), userID, &usecase.CreateNoteInput{
		Title:  req.Title,
		Body:   req.Body,
		Pinned: req.Pinned,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, note, "Note created successfully")
}

// GetNote retrieves one of the caller's notes.
func (h *NoteHandler) GetNote(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid note ID")
	}

	note, err := h.noteUC.GetNote(c.Request().Context(), userID, noteID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, note, "Note retrieved successfully")
}

// ListNotes retrieves the caller's notes, pinned first then newest first.
func (h *NoteHandler) ListNotes(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	notes, err := h.noteUC.ListNotes(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notes, "Notes retrieved successfully")
}

// UpdateNote modifies one of the caller's notes.
func (h *NoteHandler) UpdateNote(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid note ID")
	}

	var req NoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	note, err := h.noteUC.UpdateNote(c.Request().Context(), userID, noteID, &usecase.UpdateNoteInput{
		Title:  req.Title,
		Body:   req.Body,
		Pinned: req.Pinned,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, note, "Note updated successfully")
}

// DeleteNote removes one of the caller's notes.
func (h *NoteHandler) DeleteNote(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid note ID")
	}

	if err := h.noteUC.DeleteNote(c.Request().Context(), userID, noteID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Note deleted"}, "Note deleted successfully")
}
