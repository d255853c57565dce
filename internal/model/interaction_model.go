package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InteractionModel rows are unique per (user, post, kind). The database
// constraint is what serializes concurrent toggles and upserts.
type InteractionModel struct {
	ID        string    `gorm:"type:uuid;primary_key"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_interactions_user_post_kind"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_interactions_user_post_kind;index"`
	Kind      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_interactions_user_post_kind"`
	Value     *int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (InteractionModel) TableName() string { return "interactions" }

func (i *InteractionModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
