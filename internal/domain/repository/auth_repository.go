// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"horizon/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAuthNotFound is returned when an authentication method is not found.
var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository defines the standard operations for authentication-related persistence.
type AuthRepository interface {
	// CreateAuthentication persists a new authentication method (e.g., email/password, social login).
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves an authentication method by its provider and provider-specific ID.
	FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error)

	// FindAuthenticationByUserIDAndProvider finds an authentication method for a specific user and provider.
	FindAuthenticationByUserIDAndProvider(ctx context.Context, userID uuid.UUID, provider string) (*entity.Authentication, error)

	// UpdateAuthentication modifies an existing authentication record.
	UpdateAuthentication(ctx context.Context, auth *entity.Authentication) error
}
