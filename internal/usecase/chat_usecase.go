package usecase

import (
	"context"

	"horizon/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateThreadInput defines the data required to open a thread.
type CreateThreadInput struct {
	Title     string
	MemberIDs []uuid.UUID
}

// PostMessageInput defines the data required to post a message.
type PostMessageInput struct {
	Body string
}

// ChatUsecase defines the interface for threads, messages and the live feed.
type ChatUsecase interface {
	// CreateThread opens a thread; the creator is always a member.
	CreateThread(ctx context.Context, userID uuid.UUID, input *CreateThreadInput) (*entity.Thread, error)

	// GetThread retrieves a thread the user is a member of.
	GetThread(ctx context.Context, userID, threadID uuid.UUID) (*entity.Thread, error)

	// ListThreads retrieves the user's threads, most recently active first.
	ListThreads(ctx context.Context, userID uuid.UUID) ([]*entity.Thread, error)

	// PostMessage appends a message to a thread the user is a member of.
	PostMessage(ctx context.Context, userID, threadID uuid.UUID, input *PostMessageInput) (*entity.Message, error)

	// ListMessagesAfter retrieves up to limit messages with a sequence
	// number strictly greater than afterSeq, in ascending order. This is
	// the poll primitive the live feed is built on.
	ListMessagesAfter(ctx context.Context, userID, threadID uuid.UUID, afterSeq int64, limit int) ([]*entity.Message, error)

	// LatestSeq returns the thread's current high-water sequence number,
	// used to position a fresh live-feed connection.
	LatestSeq(ctx context.Context, userID, threadID uuid.UUID) (int64, error)
}
