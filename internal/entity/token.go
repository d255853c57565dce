package entity

import "time"

// RefreshToken is a persisted long-lived session credential. One row
// per outstanding session; deleting rows revokes them.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
