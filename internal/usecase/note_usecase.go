package usecase

import (
	"context"

	"horizon/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateNoteInput defines the data required to create a note.
type CreateNoteInput struct {
	Title  string
	Body   string
	Pinned bool
}

// UpdateNoteInput defines the data required to update a note.
type UpdateNoteInput struct {
	Title  string
	Body   string
	Pinned bool
}

// NoteUsecase defines the interface for note management use cases.
type NoteUsecase interface {
	// CreateNote creates a note owned by the user.
	CreateNote(ctx context.Context, userID uuid.UUID, input *CreateNoteInput) (*entity.Note, error)

	// GetNote retrieves one of the user's notes.
	GetNote(ctx context.Context, userID, noteID uuid.UUID) (*entity.Note, error)

	// ListNotes retrieves the user's notes, pinned first then newest first.
	// Served through the request cache; mutations invalidate the user's
	// cached pages.
	ListNotes(ctx context.Context, userID uuid.UUID) ([]*entity.Note, error)

	// UpdateNote modifies one of the user's notes.
	UpdateNote(ctx context.Context, userID, noteID uuid.UUID, input *UpdateNoteInput) (*entity.Note, error)

	// DeleteNote removes one of the user's notes.
	DeleteNote(ctx context.Context, userID, noteID uuid.UUID) error
}
