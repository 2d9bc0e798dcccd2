package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenGeneratorProducesUniqueTokens(t *testing.T) {
	gen := NewTokenGenerator()
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, err := gen.Generate()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(token), 43, "32 random bytes encode to at least 43 chars")
		_, dup := seen[token]
		assert.False(t, dup, "token collision")
		seen[token] = struct{}{}
	}
}

func TestTokenGeneratorIsURLSafe(t *testing.T) {
	gen := NewTokenGenerator()
	token, err := gen.Generate()
	require.NoError(t, err)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
	assert.NotContains(t, token, "=")
}
