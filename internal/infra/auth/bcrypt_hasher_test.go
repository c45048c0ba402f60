package auth

import (
	"testing"

	"horizon/config"
	domainerrors "horizon/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        72,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
		},
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	hash, err := hasher.Hash("Sup3rSecret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Sup3rSecret", hash)

	assert.True(t, hasher.Check("Sup3rSecret", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	first, err := hasher.Hash("Sup3rSecret")
	require.NoError(t, err)
	second, err := hasher.Hash("Sup3rSecret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_CostFallsBackToDefault(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 99},
	}).(*bcryptHasher)

	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid password", password: "Sup3rSecret", wantErr: false},
		{name: "too short", password: "Ab1", wantErr: true},
		{name: "missing uppercase", password: "sup3rsecret", wantErr: true},
		{name: "missing lowercase", password: "SUP3RSECRET", wantErr: true},
		{name: "missing digit", password: "SuperSecret", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBcryptHasher_NoPolicyAcceptsAnything(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(&config.Config{}).(*bcryptHasher)

	assert.NoError(t, hasher.ValidatePasswordStrength("x"))
}
