package entity

import "time"

// Event types published after state changes.
const (
	EventAccountRegistered = "account.registered"
	EventProfileSubmitted  = "profile.submitted"
)

// DomainEvent is a best-effort notification about a committed change.
type DomainEvent struct {
	Type       string    `json:"type"`
	RequestID  string    `json:"request_id,omitempty"`
	Identity   Identity  `json:"identity"`
	Role       Role      `json:"role"`
	OccurredAt time.Time `json:"occurred_at"`
	Fields     []string  `json:"fields,omitempty"` // Names of the fields a commit wrote.
}
