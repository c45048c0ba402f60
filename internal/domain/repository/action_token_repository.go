// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"horizon/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for action token persistence.
var (
	// ErrActionTokenNotFound is returned when no token matches the hash and purpose.
	ErrActionTokenNotFound = errors.New("action token not found")
	// ErrActionTokenExpired is returned when the matching token had already
	// passed its expiry. The row is deleted regardless.
	ErrActionTokenExpired = errors.New("action token has expired")
)

// ActionTokenRepository defines the interface for single-use token persistence.
type ActionTokenRepository interface {
	// CreateActionToken persists a new single-use token.
	CreateActionToken(ctx context.Context, token *entity.ActionToken) error

	// ConsumeActionToken atomically deletes the token matching the hash and
	// purpose and returns it. The delete happens on sight: a concurrent
	// second consumption of the same token observes ErrActionTokenNotFound,
	// and an expired token is destroyed before ErrActionTokenExpired is
	// returned.
	ConsumeActionToken(ctx context.Context, tokenHash string, purpose entity.TokenPurpose) (*entity.ActionToken, error)

	// DeleteActionTokensByUserID removes all outstanding tokens of one purpose
	// for a user, invalidating previously issued links.
	DeleteActionTokensByUserID(ctx context.Context, userID uuid.UUID, purpose entity.TokenPurpose) error

	// DeleteExpiredActionTokens removes all expired tokens from the database.
	DeleteExpiredActionTokens(ctx context.Context) (int64, error)
}
