package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const tokenByteLength = 32 // 256 bits

// TokenGenerator produces opaque session tokens.
type TokenGenerator interface {
	Generate() (string, error)
}

type randomTokenGenerator struct{}

// NewTokenGenerator returns a TokenGenerator backed by crypto/rand.
// Tokens are URL-safe base64 without padding.
func NewTokenGenerator() TokenGenerator {
	return randomTokenGenerator{}
}

func (randomTokenGenerator) Generate() (string, error) {
	b := make([]byte, tokenByteLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
