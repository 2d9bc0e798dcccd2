package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// SecretComparer checks a presented value against a configured secret.
type SecretComparer interface {
	// Matches reports whether presented equals the configured secret.
	// An empty configured secret never matches.
	Matches(configured, presented string) bool
}

type secretComparer struct{}

// NewSecretComparer returns a SecretComparer that accepts the configured
// secret either as plaintext (compared in constant time) or as a bcrypt
// hash, recognized by its "$2" prefix. Storing hashes in the environment
// instead of plaintext is a deployment choice, not a protocol change.
func NewSecretComparer() SecretComparer {
	return secretComparer{}
}

func (secretComparer) Matches(configured, presented string) bool {
	if configured == "" || presented == "" {
		return false
	}
	if strings.HasPrefix(configured, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(presented)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(presented)) == 1
}
