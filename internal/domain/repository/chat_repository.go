// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"horizon/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for chat persistence.
var (
	// ErrThreadNotFound is returned when a thread is not found.
	ErrThreadNotFound = errors.New("thread not found")
	// ErrMessageNotFound is returned when a message is not found.
	ErrMessageNotFound = errors.New("message not found")
)

// ChatRepository defines the interface for thread and message persistence.
type ChatRepository interface {
	// CreateThread persists a new thread together with its memberships.
	CreateThread(ctx context.Context, thread *entity.Thread) error

	// FindThreadByID retrieves a thread with its member list.
	FindThreadByID(ctx context.Context, id uuid.UUID) (*entity.Thread, error)

	// FindThreadsByUser retrieves all threads the user participates in,
	// most recently updated first.
	FindThreadsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Thread, error)

	// CreateMessage persists a new message and fills in its database-assigned
	// sequence number.
	CreateMessage(ctx context.Context, message *entity.Message) error

	// FindMessagesAfter retrieves up to limit messages of a thread whose
	// sequence number is strictly greater than afterSeq, in ascending
	// sequence order. This is the poll primitive behind the live feed.
	FindMessagesAfter(ctx context.Context, threadID uuid.UUID, afterSeq int64, limit int) ([]*entity.Message, error)

	// LatestSeq returns the highest sequence number in the thread, or zero
	// when the thread has no messages.
	LatestSeq(ctx context.Context, threadID uuid.UUID) (int64, error)
}
