package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost keeps hashing slow enough to resist brute force
// without making login noticeably laggy.
const DefaultBcryptCost = 12

// PasswordHasher is a one-way credential hasher. Equal plaintexts
// produce different hashes because bcrypt salts each one; there is no
// reversal operation.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a PasswordHasher with the default cost.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: DefaultBcryptCost}
}

// Hash generates a salted bcrypt hash of the given password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify reports whether the plaintext password matches the hash.
func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
