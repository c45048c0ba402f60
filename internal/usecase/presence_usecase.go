package usecase

import (
	"context"

	"horizon/internal/domain/entity"

	"github.com/google/uuid"
)

// PresenceUsecase defines the interface for liveness tracking.
type PresenceUsecase interface {
	// Touch records that the user is online right now. Unconditional write;
	// the last writer wins.
	Touch(ctx context.Context, userID uuid.UUID) error

	// GetPresence reports liveness for the given users, in input order.
	// A user with no live entry is simply offline; that is a normal result,
	// never an error.
	GetPresence(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PresenceStatus, error)
}
