package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpaqueToken_URLSafeAndUnique(t *testing.T) {
	first, err := newOpaqueToken()
	require.NoError(t, err)
	second, err := newOpaqueToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	// 32 bytes of entropy encode to 43 unpadded base64url characters.
	assert.Len(t, first, 43)
	assert.NotContains(t, first, "+")
	assert.NotContains(t, first, "/")
	assert.NotContains(t, first, "=")
}

func TestHashToken_Deterministic(t *testing.T) {
	raw, err := newOpaqueToken()
	require.NoError(t, err)

	digest := hashToken(raw)
	assert.Equal(t, digest, hashToken(raw))
	// Hex-encoded SHA-256.
	assert.Len(t, digest, 64)
}

func TestHashToken_AnyBitFlipChangesDigest(t *testing.T) {
	raw, err := newOpaqueToken()
	require.NoError(t, err)
	digest := hashToken(raw)

	for i := 0; i < len(raw); i++ {
		for bit := 0; bit < 8; bit++ {
			mutated := []byte(raw)
			mutated[i] ^= 1 << bit
			if string(mutated) == raw {
				continue
			}

			assert.NotEqual(t, digest, hashToken(string(mutated)),
				"flipping bit %d of byte %d must change the digest", bit, i)
		}
	}
}
