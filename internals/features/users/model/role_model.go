package model

import (
	"time"
)

// RoleModel is static reference data (organizer, attendee, admin, ...).
type RoleModel struct {
	RoleID          int64     `gorm:"column:role_id;primaryKey;autoIncrement" json:"role_id"`
	RoleName        string    `gorm:"column:role_name;size:50;not null;uniqueIndex:uq_roles_role_name" json:"role_name"`
	RoleDescription *string   `gorm:"column:role_description;type:text" json:"role_description,omitempty"`
	RoleCreatedAt   time.Time `gorm:"column:role_created_at;autoCreateTime" json:"role_created_at"`
}

func (RoleModel) TableName() string {
	return "roles"
}
