// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService defines the interface for password hashing, verification,
// and strength validation.
type PasswordService interface {
	// HashPassword hashes a plain text password.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with its stored hash.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength checks a password against the minimum rules.
	ValidatePasswordStrength(password string) error
}
