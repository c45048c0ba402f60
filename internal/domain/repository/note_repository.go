// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"horizon/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNoteNotFound is returned when a note is not found.
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository defines the interface for note persistence.
type NoteRepository interface {
	// CreateNote persists a new note.
	CreateNote(ctx context.Context, note *entity.Note) error

	// FindNoteByID retrieves a note by its unique ID.
	FindNoteByID(ctx context.Context, id uuid.UUID) (*entity.Note, error)

	// FindNotesByUser retrieves all notes for a user, pinned first then newest first.
	FindNotesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Note, error)

	// UpdateNote modifies an existing note.
	UpdateNote(ctx context.Context, note *entity.Note) error

	// DeleteNote removes a note by its ID.
	DeleteNote(ctx context.Context, id uuid.UUID) error
}
