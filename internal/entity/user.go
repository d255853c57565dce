package entity

import "time"

type UserRole string

const (
	RoleViewer  UserRole = "viewer"
	RoleCreator UserRole = "creator"
	RoleAdmin   UserRole = "admin"
)

type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Password    string     `json:"-"`
	Role        UserRole   `json:"role"`
	AvatarURL   string     `json:"avatar,omitempty"`
	Bio         string     `json:"bio,omitempty"`
	SocialLinks string     `json:"social_links,omitempty"`
	StudentID   string     `json:"studentId,omitempty"`
	LastLoginAt *time.Time `json:"-"`
	CreatedAt   time.Time  `json:"joinDate"`
	UpdatedAt   time.Time  `json:"-"`
}
