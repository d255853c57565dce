package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID          string     `gorm:"type:uuid;primary_key"`
	Email       string     `gorm:"uniqueIndex;not null"`
	Name        string     `gorm:"not null"`
	Password    string     `gorm:"not null"`
	Role        string     `gorm:"type:varchar(20);default:'viewer';not null"`
	AvatarURL   string     `gorm:"column:avatar_url"`
	Bio         string
	SocialLinks string
	StudentID   string     `gorm:"index"`
	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
