package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"horizon/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testClientID = "test-client-id.apps.googleusercontent.com"

func newTestService() *AuthServiceImpl {
	cfg := &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{ClientID: testClientID},
	}

	return NewAuthService(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*AuthServiceImpl)
}

// buildIDToken forges an unsigned JWT carrying the given claims. Signature
// verification is not part of this service's contract, so a dummy signature
// segment is enough.
func buildIDToken(t *testing.T, claims GoogleIDTokenClaims) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))

	payloadJSON, err := json.Marshal(claims)
	require.NoError(t, err)
	payload := base64.RawURLEncoding.EncodeToString(payloadJSON)

	return header + "." + payload + ".signature"
}

func validClaims() GoogleIDTokenClaims {
	return GoogleIDTokenClaims{
		Iss:           "https://accounts.google.com",
		Sub:           "1234567890",
		Aud:           testClientID,
		Exp:           time.Now().Add(time.Hour).Unix(),
		Iat:           time.Now().Unix(),
		Email:         "user@example.com",
		EmailVerified: true,
		Name:          "Test User",
		Picture:       "https://example.com/avatar.png",
	}
}

func TestVerifyIDToken_Success(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	token := buildIDToken(t, validClaims())

	user, err := svc.VerifyIDToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, "1234567890", user.ID)
	assert.Equal(t, "user@example.com", user.Email)
	assert.Equal(t, "Test User", user.Name)
	assert.Equal(t, "google", user.Provider)
	assert.True(t, user.EmailVerified)
}

func TestVerifyIDToken_Failures(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	tests := []struct {
		name   string
		mutate func(*GoogleIDTokenClaims)
	}{
		{
			name:   "wrong issuer",
			mutate: func(c *GoogleIDTokenClaims) { c.Iss = "https://evil.example.com" },
		},
		{
			name:   "wrong audience",
			mutate: func(c *GoogleIDTokenClaims) { c.Aud = "another-client-id" },
		},
		{
			name:   "expired token",
			mutate: func(c *GoogleIDTokenClaims) { c.Exp = time.Now().Add(-time.Hour).Unix() },
		},
		{
			name:   "unverified email",
			mutate: func(c *GoogleIDTokenClaims) { c.EmailVerified = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims := validClaims()
			tt.mutate(&claims)

			_, err := svc.VerifyIDToken(context.Background(), buildIDToken(t, claims))
			assert.Error(t, err)
		})
	}
}

func TestVerifyIDToken_MalformedToken(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	_, err := svc.VerifyIDToken(context.Background(), "not-a-jwt")
	assert.Error(t, err)

	_, err = svc.VerifyIDToken(context.Background(), "a.!!!.c")
	assert.Error(t, err)
}

func TestGetProvider(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "google", newTestService().GetProvider())
}
