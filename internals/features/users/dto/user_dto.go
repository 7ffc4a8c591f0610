package dto

import (
	"time"

	"eventku_backend/internals/features/users/model"
)

type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=8"`
	FullName string  `json:"full_name" validate:"required,max=100"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     *string   `json:"phone,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToModel builds the user row; the caller supplies the bcrypt hash.
func (r *CreateUserRequest) ToModel(passwordHash string) *model.UserModel {
	return &model.UserModel{
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: passwordHash,
		FullName:     r.FullName,
		Phone:        r.Phone,
		IsActive:     true,
	}
}

func FromUserModel(m *model.UserModel) *UserResponse {
	return &UserResponse{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		FullName:  m.FullName,
		Phone:     m.Phone,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromUserModels(models []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(models))
	for i := range models {
		out = append(out, *FromUserModel(&models[i]))
	}
	return out
}
