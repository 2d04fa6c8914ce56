package auth

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the bcrypt cost used when none is configured.
const DefaultBcryptCost = bcrypt.DefaultCost

// PasswordHasher provides password hashing and verification functionality.
type PasswordHasher struct {
	cost int

	dummyOnce sync.Once
	dummyHash []byte
}

// NewPasswordHasher creates a PasswordHasher; out-of-range costs fall back to the default.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash generates a bcrypt hash of the given password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify checks if the provided password matches the hash.
func (h *PasswordHasher) Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// VerifyMissing spends the same bcrypt work as Verify for an account that
// does not exist, so lookups cannot be told apart by timing. It always
// reports false.
func (h *PasswordHasher) VerifyMissing(password string) bool {
	h.dummyOnce.Do(func() {
		// Generation only fails for out-of-range costs, which NewPasswordHasher rules out.
		h.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("missing-account"), h.cost)
	})
	bcrypt.CompareHashAndPassword(h.dummyHash, []byte(password))
	return false
}
