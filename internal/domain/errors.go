package domain

import "errors"

// Sentinel errors shared across services. Controllers map these to the
// API error envelope; anything else is treated as an internal error.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredential is returned for a wrong invitation code or password.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrNoSession is the single outcome for a missing, unknown, malformed,
	// or expired session token. Verification fails closed: store errors
	// collapse into this too, so callers can never mistake a broken lookup
	// for an authenticated one.
	ErrNoSession = errors.New("no session")

	// ErrReasonRequired is returned when rejecting content without a reason.
	ErrReasonRequired = errors.New("rejection reason is required")

	// ErrInvalidAction is returned for a moderation action other than
	// approve or reject.
	ErrInvalidAction = errors.New("invalid moderation action")

	// ErrNotApproved is returned when pinning content that is not approved.
	ErrNotApproved = errors.New("content is not approved")

	// ErrInvalidInput covers malformed service-level input such as an empty
	// batch id list.
	ErrInvalidInput = errors.New("invalid input")
)
