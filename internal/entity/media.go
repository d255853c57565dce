package entity

import "time"

// Media is a stored file belonging to a post. Rows are purged in
// cascade with their post.
type Media struct {
	ID        string    `json:"-"`
	PostID    string    `json:"-"`
	FilePath  string    `json:"file_path"`
	FileType  string    `json:"file_type"`
	FileSize  int64     `json:"file_size"`
	CreatedAt time.Time `json:"-"`
}
