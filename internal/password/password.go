// Package password isolates secret storage and verification behind one
// boundary so the hashing policy can change without touching the session
// logic. New secrets are bcrypt hashes; stores written by the legacy
// program hold plaintext, which Verify still accepts.
package password

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Hash returns the stored form of a plaintext password.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(h), nil
}

// Verify reports whether plain matches the stored secret. Legacy plaintext
// secrets are compared in constant time.
func Verify(secret, plain string) bool {
	if isBcrypt(secret) {
		return bcrypt.CompareHashAndPassword([]byte(secret), []byte(plain)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(plain)) == 1
}

// NeedsRehash reports whether the stored secret predates the current
// hashing policy and should be replaced once the plaintext is available.
func NeedsRehash(secret string) bool {
	return !isBcrypt(secret)
}

func isBcrypt(secret string) bool {
	return strings.HasPrefix(secret, "$2a$") ||
		strings.HasPrefix(secret, "$2b$") ||
		strings.HasPrefix(secret, "$2y$")
}
