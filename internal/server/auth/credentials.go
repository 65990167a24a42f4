package auth

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/contactdesk/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plaintext string, cost int) (string, error)
	Verify(plaintext, hashed string) (bool, error)
}

// BcryptHasher implements PasswordHasher with bcrypt. The salt is generated
// per hash and embedded in the result.
type BcryptHasher struct{}

var _ PasswordHasher = BcryptHasher{}

// Hash returns the bcrypt encoding of plaintext at the given cost.
// An out-of-range cost or a password longer than 72 bytes yields
// common.ErrHashing.
func (BcryptHasher) Hash(plaintext string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return "", fmt.Errorf("%w: cost %d out of range", common.ErrHashing, cost)
	}

	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrHashing, err)
	}
	return string(h), nil
}

// Verify reports whether plaintext matches hashed. A mismatch is not an
// error; only a hash that cannot be decoded is.
func (BcryptHasher) Verify(plaintext, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", common.ErrHashing, err)
	}
}
