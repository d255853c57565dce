package entity

import "time"

type PostStatus string

const (
	StatusPending  PostStatus = "pending"
	StatusApproved PostStatus = "approved"
	StatusRejected PostStatus = "rejected"
)

type PostType string

const (
	PostTypeVideo PostType = "video"
	PostTypeAudio PostType = "audio"
	PostTypeBlog  PostType = "blog"
)

// ValidPostType reports whether t is one of the three portals.
func ValidPostType(t PostType) bool {
	switch t {
	case PostTypeVideo, PostTypeAudio, PostTypeBlog:
		return true
	}
	return false
}

type Post struct {
	ID           string     `json:"id"`
	AuthorID     string     `json:"authorId"`
	AuthorName   string     `json:"authorName,omitempty"`
	AuthorRole   UserRole   `json:"authorRole,omitempty"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Type         PostType   `json:"type"`
	Thumbnail    string     `json:"thumbnail,omitempty"`
	Duration     string     `json:"duration,omitempty"`
	Status       PostStatus `json:"status"`
	Views        int64      `json:"views"`
	Rating       float64    `json:"rating"`
	Votes        int64      `json:"votes"`
	HasVoted     bool       `json:"hasVoted"`
	IsDeleted    bool       `json:"isDeleted,omitempty"`
	DeletedAt    *time.Time `json:"deletedDate,omitempty"`
	DeleteReason string     `json:"reason,omitempty"`
	Media        []Media    `json:"media"`
	CreatedAt    time.Time  `json:"uploadDate"`
	UpdatedAt    time.Time  `json:"-"`
}
