// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"horizon/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// GoogleLoginInput carries the ID token obtained from Google Sign-In.
type GoogleLoginInput struct {
	IDToken string
}

// ConfirmPasswordResetInput carries the raw reset token and the new password.
type ConfirmPasswordResetInput struct {
	RawToken    string
	NewPassword string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// SessionOutput returns the raw session token after a successful login.
// The raw token exists only in this value and in the cookie built from it;
// the database keeps its hash.
type SessionOutput struct {
	RawToken  string
	ExpiresAt time.Time
	User      *entity.User
}

// AuthUsecase defines the interface for identity operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a user with email/password credentials.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies email/password credentials and opens a session.
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)

	// GoogleLogin verifies a Google ID token, creating the account on first
	// sight, and opens a session.
	GoogleLogin(ctx context.Context, input *GoogleLoginInput) (*SessionOutput, error)

	// ResolveSession maps a raw session token to its user. Every failure
	// mode (missing, unknown, expired) collapses to ErrUnauthenticated.
	ResolveSession(ctx context.Context, rawToken string) (*entity.User, *entity.Session, error)

	// Logout revokes the session behind the raw token. Idempotent; an empty
	// token is a no-op.
	Logout(ctx context.Context, rawToken string) error

	// RequestMagicLink issues a magic-link token for the account with that
	// email and mails the link. To avoid becoming an account-existence
	// oracle it reports success even when no account matches.
	RequestMagicLink(ctx context.Context, email string) error

	// MagicLinkQR issues a magic-link token for the email and renders the
	// consume URL as a PNG QR code for cross-device login.
	MagicLinkQR(ctx context.Context, email string) ([]byte, error)

	// ConsumeMagicLink destroys the single-use token and, when it was live,
	// opens a session for its user. All failures collapse to
	// ErrActionTokenInvalid.
	ConsumeMagicLink(ctx context.Context, rawToken string) (*SessionOutput, error)

	// RequestPasswordReset issues a reset token and mails the link, with the
	// same anti-oracle behavior as RequestMagicLink.
	RequestPasswordReset(ctx context.Context, email string) error

	// ConfirmPasswordReset destroys the reset token, updates the password
	// hash and revokes every session of the user.
	ConfirmPasswordReset(ctx context.Context, input *ConfirmPasswordResetInput) error

	// GetUser loads the current user's identity.
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
