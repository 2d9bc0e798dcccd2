package domain

import (
	"context"
	"time"
)

// Guest represents an invited person eligible to interact with the event.
// Guests are created by an external registration/import process; this core
// only reads them. Attending and PlusOne belong to the RSVP subsystem and
// are carried read-only.
// swagger:model Guest
type Guest struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	InvitationCode string    `json:"invitation_code,omitempty"`
	Attending      bool      `json:"attending"`
	PlusOne        bool      `json:"plus_one"`
	CreatedAt      time.Time `json:"created_at"`
}

// GuestRepository defines read-only access to guest identities.
type GuestRepository interface {
	// GetByInvitationCode matches codes case-insensitively.
	GetByInvitationCode(ctx context.Context, code string) (*Guest, error)
	GetByID(ctx context.Context, id string) (*Guest, error)
	List(ctx context.Context) ([]*Guest, error)
}
