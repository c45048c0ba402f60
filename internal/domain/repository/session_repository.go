// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"horizon/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when no session matches the lookup.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a matching session exists but its
	// lifetime has elapsed. The implementation deletes the row on sight.
	ErrSessionExpired = errors.New("session has expired")
)

// SessionRepository defines the interface for session persistence.
// This supports multi-device login and remote logout functionality.
type SessionRepository interface {
	// CreateSession persists a new session, representing a logged-in device.
	CreateSession(ctx context.Context, session *entity.Session) error

	// FindSessionByTokenHash retrieves a session by its securely stored hash.
	// A matching row past its expiry is deleted before ErrSessionExpired is
	// returned, so expired sessions never survive their first lookup.
	FindSessionByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// FindSessionByID retrieves a session record by its unique ID.
	FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// FindSessionsByUserID retrieves all active sessions for a specific user,
	// newest first.
	FindSessionsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error)

	// DeleteSession removes a session by its ID, effectively ending it.
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// DeleteSessionByTokenHash deletes a session by its hash, effectively ending it.
	DeleteSessionByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteSessionsByUserID removes all sessions for a specific user.
	// This is used for "logout from all devices".
	DeleteSessionsByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpiredSessions removes all expired sessions from the database.
	// This should be called periodically for cleanup.
	DeleteExpiredSessions(ctx context.Context) (int64, error)

	// CountActiveSessionsByUserID returns the number of active (non-expired) sessions for a user.
	CountActiveSessionsByUserID(ctx context.Context, userID uuid.UUID) (int, error)
}
