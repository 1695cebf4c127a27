// Package auth holds the security primitives of the API: password hashing,
// bearer token issuance/verification, and the owner-or-admin access policy.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes and verifies credentials with bcrypt. The salt is
// generated per call and embedded in the stored hash, so identical passwords
// produce distinct hashes.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher with bcrypt's default cost.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcrypt.DefaultCost}
}

// Hash returns the salted one-way hash of plaintext. It fails only on an
// internal bcrypt failure, never on the password's content.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches storedHash. bcrypt's comparison is
// constant-time over the derived key, so a mismatch position is not observable.
func (h *PasswordHasher) Verify(plaintext, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}
