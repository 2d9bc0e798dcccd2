package domain

import (
	"context"
	"time"
)

// AuthMethod identifies how a session was established.
type AuthMethod string

const (
	AuthMethodInvitationCode AuthMethod = "invitation_code"
	AuthMethodSharedPassword AuthMethod = "shared_password"
	AuthMethodBoth           AuthMethod = "both"
)

// DefaultGuestName is the display name for a shared-password session when
// the submitter did not assert one.
const DefaultGuestName = "Guest"

// GuestSession is proof of a successful authentication. The token is an
// opaque random value transmitted only via an http-only cookie. GuestID is
// empty for shared-password sessions, which do not map to a known Guest.
// swagger:model GuestSession
type GuestSession struct {
	ID             string     `json:"id"`
	Token          string     `json:"-"`
	GuestID        string     `json:"guest_id,omitempty"`
	GuestName      string     `json:"guest_name"`
	AuthMethod     AuthMethod `json:"auth_method"`
	CreatedAt      time.Time  `json:"created_at"`
	ExpiresAt      time.Time  `json:"expires_at"`
	LastActivityAt time.Time  `json:"last_activity_at"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s *GuestSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionRepository defines storage for guest sessions. Session rows are
// owned exclusively by the auth service; no other component writes them.
type SessionRepository interface {
	Create(ctx context.Context, session *GuestSession) error
	GetByToken(ctx context.Context, token string) (*GuestSession, error)
	DeleteByToken(ctx context.Context, token string) error
	// Touch updates last_activity_at. Best-effort; callers ignore failures.
	Touch(ctx context.Context, sessionID string, at time.Time) error
}

// LoginInput carries the credentials presented to Login. Which fields are
// required depends on Method.
type LoginInput struct {
	Method         AuthMethod
	InvitationCode string
	Password       string
	GuestName      string
}

// SessionToucher is the narrow slice of AuthService other services use to
// record submission activity.
type SessionToucher interface {
	TouchSession(sessionID string)
}

// AuthService defines credential verification and session lifecycle.
type AuthService interface {
	// Login verifies the presented credentials and creates a session.
	// Returns ErrInvalidCredential (wrapped with which check failed) when
	// verification fails; no session is created in that case.
	Login(ctx context.Context, in LoginInput) (*GuestSession, error)
	// VerifySession returns the session for a token, or ErrNoSession for a
	// missing, unknown, or expired token. It never returns store errors.
	VerifySession(ctx context.Context, token string) (*GuestSession, error)
	// TouchSession bumps last_activity_at in the background. Fire-and-forget.
	TouchSession(sessionID string)
	// Logout invalidates the session for the token. Idempotent: logging out
	// an unknown or already-expired token is not an error.
	Logout(ctx context.Context, token string) error
}
