package model

import (
	"time"
)

// UserModel represents the users table. Users are the referenced side of
// most relations (organizer, buyer, attendee); they are never cascade-deleted.
// Retirement goes through the IsActive flag instead of a hard delete.
type UserModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"size:50;not null;uniqueIndex:uq_users_username" json:"username"`
	Email        string    `gorm:"size:255;not null;uniqueIndex:uq_users_email" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	FullName     string    `gorm:"size:100;not null" json:"full_name"`
	Phone        *string   `gorm:"size:20" json:"phone,omitempty"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
