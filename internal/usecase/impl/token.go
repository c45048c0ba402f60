// Package impl contains the implementation of the application's business logic.
package impl

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"horizon/internal/errors"
)

// opaqueTokenBytes is the entropy of a raw session or action token.
// 32 bytes gives 256 bits, making brute-force guessing infeasible.
const opaqueTokenBytes = 32

// newOpaqueToken generates a raw token from crypto/rand, encoded as
// unpadded base64url so it is cookie- and URL-safe.
func newOpaqueToken() (string, error) {
	buf := make([]byte, opaqueTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate token")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// hashToken maps a raw token to the hex SHA-256 digest stored in the
// database. One-way: a leaked table row cannot be replayed as a token.
func hashToken(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))

	return hex.EncodeToString(sum[:])
}
