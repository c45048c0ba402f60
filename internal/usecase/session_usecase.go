// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"horizon/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for session management operations.
type SessionUsecase interface {
	// GetActiveSessions lists the user's live sessions, newest first.
	GetActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error)

	// RevokeSession ends one session after verifying it belongs to the user.
	RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error

	// RevokeAllSessions ends every session of the user (logout everywhere).
	RevokeAllSessions(ctx context.Context, userID uuid.UUID) error

	// RevokeAllOtherSessions ends every session except the current one.
	RevokeAllOtherSessions(ctx context.Context, userID uuid.UUID, currentSessionID uuid.UUID) error

	// CleanupExpiredSessions removes expired sessions and action tokens.
	CleanupExpiredSessions(ctx context.Context) (int, error)
}
