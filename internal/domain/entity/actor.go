package entity

import (
	"fmt"
	"time"
)

const guestUsernamePrefix = "guest_"

// Actor is any party interacting with the system.
type Actor struct {
	ID        int64     // Incrementing identifier.
	Username  string    // Unique login name; guests use a national-ID derived name.
	Email     string    // Contact email; guests get a placeholder.
	Role      Role      // Closed role enumeration.
	Active    bool      // Inactive actors cannot authenticate.
	CreatedAt time.Time // Timestamp of when the actor was created.
}

// Principal is the authenticated actor presented by the caller of a core operation.
type Principal struct {
	ActorID int64
	Role    Role
}

// Is reports whether the principal is the given actor.
func (p Principal) Is(actorID int64) bool {
	return p.ActorID == actorID
}

// GuestUsername returns the synthetic username used for guest submissions.
// The same national ID always maps to the same actor.
func GuestUsername(nationalID string) string {
	return guestUsernamePrefix + nationalID
}

// NewGuestActor builds the recipient actor materialised for a guest submission.
func NewGuestActor(nationalID string, now time.Time) *Actor {
	return &Actor{
		Username:  GuestUsername(nationalID),
		Email:     fmt.Sprintf("%s%s@example.com", guestUsernamePrefix, nationalID),
		Role:      RoleRecipient,
		Active:    true,
		CreatedAt: now,
	}
}
