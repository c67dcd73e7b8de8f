package mocks

import (
	"github.com/taskboard-hq/taskboard-api/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

// MockPasswordVerifier implements auth.PasswordVerifier with a function
// field for per-test overrides. The default falls through to bcrypt so
// tests can exercise real hashes when they want to.
type MockPasswordVerifier struct {
	CompareFn func(hashedPassword, password string) error
}

// Ensure MockPasswordVerifier implements auth.PasswordVerifier.
var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements auth.PasswordVerifier.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
