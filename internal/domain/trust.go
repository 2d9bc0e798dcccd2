package domain

// TrustTier is a coarse classification of how much a session's originating
// credential vouches for individual accountability.
type TrustTier string

const (
	TrustTrusted   TrustTier = "trusted"
	TrustUntrusted TrustTier = "untrusted"
)

// TrustTierFor maps an auth method to a trust tier. An invitation code is a
// scarce, individually issued secret, so code-verified sessions (including
// the combined path) are trusted. A shared password is known to potentially
// hundreds of people and provides no individual accountability; those
// sessions, and anonymous submitters, are untrusted.
//
// Pure function, no I/O. The moderation engine applies it exactly once, at
// content creation time.
func TrustTierFor(method AuthMethod) TrustTier {
	switch method {
	case AuthMethodInvitationCode, AuthMethodBoth:
		return TrustTrusted
	default:
		return TrustUntrusted
	}
}
