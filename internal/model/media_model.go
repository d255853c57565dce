package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MediaModel struct {
	ID        string    `gorm:"type:uuid;primary_key"`
	PostID    string    `gorm:"type:uuid;not null;index"`
	FilePath  string    `gorm:"not null"`
	FileType  string    `gorm:"not null"`
	FileSize  int64     `gorm:"default:0;not null"`
	CreatedAt time.Time
}

func (MediaModel) TableName() string { return "media" }

func (m *MediaModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
