package model

import (
	"time"
)

// UserRoleModel joins users and roles. Composite identity (user, role);
// deleting either side removes the assignment.
type UserRoleModel struct {
	UserRoleUserID     int64     `gorm:"column:user_role_user_id;primaryKey;autoIncrement:false" json:"user_role_user_id"`
	UserRoleRoleID     int64     `gorm:"column:user_role_role_id;primaryKey;autoIncrement:false" json:"user_role_role_id"`
	UserRoleAssignedAt time.Time `gorm:"column:user_role_assigned_at;autoCreateTime" json:"user_role_assigned_at"`

	User UserModel `gorm:"foreignKey:UserRoleUserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user,omitempty"`
	Role RoleModel `gorm:"foreignKey:UserRoleRoleID;references:RoleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"role,omitempty"`
}

func (UserRoleModel) TableName() string {
	return "user_roles"
}
