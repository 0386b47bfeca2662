// Package crypto provides the salted password hashing primitive used by
// sign-up and sign-in. Salt and digest are stored as separate document
// fields, so the derivation takes the salt explicitly.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes  = 16
	iterations = 100_000
	keyBytes   = 32
)

// GenerateSalt returns a fresh random salt, hex encoded.
func GenerateSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword derives a hex-encoded digest from the password and salt
// using PBKDF2-SHA256.
func HashPassword(password, salt string) string {
	digest := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyBytes, sha256.New)
	return hex.EncodeToString(digest)
}

// verifyPassword reports whether the password and salt derive the stored
// digest. Comparison is constant time. Sign-in checks the configured
// credential pair instead, so nothing verifies stored digests yet.
func verifyPassword(password, salt, digest string) bool {
	computed := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
