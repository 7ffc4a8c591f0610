package dto

import (
	"time"

	"eventku_backend/internals/features/users/model"
)

type RoleRequest struct {
	RoleName        string  `json:"role_name" validate:"required,max=50"`
	RoleDescription *string `json:"role_description"`
}

type RoleResponse struct {
	RoleID          int64   `json:"role_id"`
	RoleName        string  `json:"role_name"`
	RoleDescription *string `json:"role_description,omitempty"`
}

type AssignRoleRequest struct {
	RoleID int64 `json:"role_id" validate:"required,gt=0"`
}

type UserRoleResponse struct {
	UserID     int64     `json:"user_id"`
	RoleID     int64     `json:"role_id"`
	RoleName   string    `json:"role_name,omitempty"`
	AssignedAt time.Time `json:"assigned_at"`
}

func (r *RoleRequest) ToModel() *model.RoleModel {
	return &model.RoleModel{
		RoleName:        r.RoleName,
		RoleDescription: r.RoleDescription,
	}
}

func FromRoleModel(m *model.RoleModel) *RoleResponse {
	return &RoleResponse{
		RoleID:          m.RoleID,
		RoleName:        m.RoleName,
		RoleDescription: m.RoleDescription,
	}
}

func FromRoleModels(models []model.RoleModel) []RoleResponse {
	out := make([]RoleResponse, 0, len(models))
	for i := range models {
		out = append(out, *FromRoleModel(&models[i]))
	}
	return out
}

func FromUserRoleModel(m *model.UserRoleModel) *UserRoleResponse {
	resp := &UserRoleResponse{
		UserID:     m.UserRoleUserID,
		RoleID:     m.UserRoleRoleID,
		AssignedAt: m.UserRoleAssignedAt,
	}
	if m.Role.RoleID != 0 {
		resp.RoleName = m.Role.RoleName
	}
	return resp
}

func FromUserRoleModels(models []model.UserRoleModel) []UserRoleResponse {
	out := make([]UserRoleResponse, 0, len(models))
	for i := range models {
		out = append(out, *FromUserRoleModel(&models[i]))
	}
	return out
}
