// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies a supported authentication provider.
type ProviderType = string

const (
	// ProviderTypeEmail is the email/password credential provider.
	ProviderTypeEmail ProviderType = "email"
	// ProviderTypeGoogle is the Google Sign-In provider.
	ProviderTypeGoogle ProviderType = "google"
)

// TokenPurpose identifies what a single-use action token authorizes.
type TokenPurpose string

const (
	// TokenPurposeMagicLink authorizes a passwordless login.
	TokenPurposeMagicLink TokenPurpose = "magic_link"
	// TokenPurposePasswordReset authorizes a password change without the old password.
	TokenPurposePasswordReset TokenPurpose = "password_reset"
)

// IsValid checks if the TokenPurpose is a known value.
func (p TokenPurpose) IsValid() bool {
	switch p {
	case TokenPurposeMagicLink, TokenPurposePasswordReset:
		return true
	default:
		return false
	}
}

// Authentication represents a single method of logging in (a credential).
// For example, a user's email/password is one record, while a linked Google account is another.
type Authentication struct {
	ID             uuid.UUID // The unique ID for this specific authentication record itself.
	UserID         uuid.UUID // Links this authentication method to the User it belongs to.
	Provider       string    // The authentication provider, e.g., "email", "google".
	ProviderUserID string    // The user's unique ID from the external provider (e.g., Google's 'sub' claim).
	PasswordHash   string    // Stores the bcrypt-hashed password, only used when the Provider is "email".
	CreatedAt      time.Time // Timestamp of when this authentication method was linked to the user account.
}

// Session represents a long-lived, authorized login on one device.
// The raw session token is handed to the client exactly once; only its hash is kept here.
type Session struct {
	ID        uuid.UUID // The unique ID for this specific session record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // Stores a SHA-256 hash of the raw session token for database lookup.
	ExpiresAt time.Time // The exact time when this session will expire and become invalid.
	CreatedAt time.Time // Timestamp of when this session was created (i.e., when the user logged in).
}

// ActionToken is a short-lived, single-use credential delivered out of band
// (magic-link mail, password-reset mail). It is destroyed on first sight:
// consumption deletes the row whether or not the action then succeeds.
type ActionToken struct {
	ID        uuid.UUID    // The unique ID for this token record.
	UserID    uuid.UUID    // The user the token acts on behalf of.
	TokenHash string       // SHA-256 hash of the raw token; the raw value is never stored.
	Purpose   TokenPurpose // What this token authorizes.
	ExpiresAt time.Time    // The exact time after which consumption must fail.
	CreatedAt time.Time    // Timestamp of when the token was issued.
}
