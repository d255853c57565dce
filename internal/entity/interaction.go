package entity

import "time"

type InteractionKind string

const (
	InteractionView   InteractionKind = "view"
	InteractionLike   InteractionKind = "like"
	InteractionRating InteractionKind = "rating"
)

// Interaction is a per-(user, post, kind) fact. At most one row exists
// per composite key; for ratings the row carries the latest value.
type Interaction struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	PostID    string          `json:"post_id"`
	Kind      InteractionKind `json:"type"`
	Value     *int            `json:"value,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Aggregates are the per-post engagement numbers derived from the
// ledger. Views come from the post counter; likes and the average
// rating are recomputed from rows.
type Aggregates struct {
	Views     int64   `json:"views"`
	Likes     int64   `json:"likes"`
	AvgRating float64 `json:"avgRating"`
}
