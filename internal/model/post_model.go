package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID           string       `gorm:"type:uuid;primary_key"`
	AuthorID     string       `gorm:"type:uuid;not null;index"`
	Title        string       `gorm:"not null"`
	Description  string
	Type         string       `gorm:"type:varchar(10);not null;index"`
	Thumbnail    string
	Duration     string
	Status       string       `gorm:"type:varchar(20);default:'pending';not null;index"`
	Views        int64        `gorm:"default:0;not null"`
	Rating       float64      `gorm:"default:0;not null"`
	IsDeleted    bool         `gorm:"default:false;not null;index"`
	DeletedAt    *time.Time
	DeleteReason string
	Media        []MediaModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (PostModel) TableName() string { return "posts" }

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
