package entity

import "time"

// Invite is an admin-issued teacher registration code bound to one email.
type Invite struct {
	Email      string     // Lower-cased email the invite was issued for.
	CodeHash   string     // bcrypt hash of the issued code.
	IssuedAt   time.Time  // When the invite was issued.
	ExpiresAt  time.Time  // After this the invite is rejected.
	ConsumedAt *time.Time // Set once a teacher account was created with it.
}

// Usable reports whether the invite can still be redeemed at now.
func (i *Invite) Usable(now time.Time) bool {
	return i != nil && i.ConsumedAt == nil && now.Before(i.ExpiresAt)
}
