package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrustTierFor(t *testing.T) {
	tests := []struct {
		name   string
		method AuthMethod
		want   TrustTier
	}{
		{name: "invitation code", method: AuthMethodInvitationCode, want: TrustTrusted},
		{name: "combined", method: AuthMethodBoth, want: TrustTrusted},
		{name: "shared password", method: AuthMethodSharedPassword, want: TrustUntrusted},
		{name: "empty", method: "", want: TrustUntrusted},
		{name: "garbage", method: "oauth", want: TrustUntrusted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrustTierFor(tt.method))
		})
	}
}

func TestCallerTrustTier(t *testing.T) {
	anon := Caller{}
	assert.True(t, anon.Anonymous())
	assert.Equal(t, TrustUntrusted, anon.TrustTier())

	trusted := Caller{SessionID: "s-1", AuthMethod: AuthMethodInvitationCode}
	assert.False(t, trusted.Anonymous())
	assert.Equal(t, TrustTrusted, trusted.TrustTier())

	untrusted := Caller{SessionID: "s-2", AuthMethod: AuthMethodSharedPassword}
	assert.Equal(t, TrustUntrusted, untrusted.TrustTier())
}
