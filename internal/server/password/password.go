// Package password handles credential hashing and validation for the
// identity provider.
package password

import (
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/vkozyrev/floodwatch/internal/common"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const minLen = 8

// Hash hashes a plaintext password with bcrypt.
func Hash(password string) ([]byte, error) {
	if err := Validate(password); err != nil {
		return nil, err
	}
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// Verify compares a plaintext candidate with a stored hash.
func Verify(hash []byte, candidate string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(candidate)) == nil
}

// Validate enforces the password policy.
func Validate(password string) error {
	if len(password) < minLen {
		return common.ErrorWeakPassword
	}
	return nil
}

// ValidateEmail enforces the address format accepted at registration.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return common.ErrorInvalidEmailFormat
	}
	return nil
}
