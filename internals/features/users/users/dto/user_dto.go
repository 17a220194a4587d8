// internals/features/users/users/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	uModel "sekolahku_backend/internals/features/users/users/model"
)

/* ===================== REQUESTS ===================== */

type CreateUserRequest struct {
	AdminID  uuid.UUID       `json:"admin_id" validate:"required"`
	Username string          `json:"username" validate:"required,min=3,max=50"`
	Email    string          `json:"email" validate:"required,email,max=100"`
	Password string          `json:"password" validate:"required,min=8,max=255"`
	Role     uModel.UserRole `json:"role" validate:"required,oneof=student teacher parent"`
}

func (r *CreateUserRequest) ToModel(hashedPassword string) *uModel.UserModel {
	return &uModel.UserModel{
		AdminID:        r.AdminID,
		Username:       r.Username,
		Email:          r.Email,
		Role:           r.Role,
		HashedPassword: hashedPassword,
	}
}

// PUT = full replace
type UpdateUserRequest struct {
	AdminID  uuid.UUID       `json:"admin_id" validate:"required"`
	Username string          `json:"username" validate:"required,min=3,max=50"`
	Email    string          `json:"email" validate:"required,email,max=100"`
	Password string          `json:"password" validate:"required,min=8,max=255"`
	Role     uModel.UserRole `json:"role" validate:"required,oneof=student teacher parent"`
}

func (r *UpdateUserRequest) ApplyToModel(m *uModel.UserModel, hashedPassword string) {
	m.AdminID = r.AdminID
	m.Username = r.Username
	m.Email = r.Email
	m.Role = r.Role
	m.HashedPassword = hashedPassword
}

/* ===================== RESPONSES ===================== */

type UserResponse struct {
	UsersID   uuid.UUID       `json:"users_id"`
	AdminID   uuid.UUID       `json:"admin_id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Role      uModel.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewUserResponse(m *uModel.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		UsersID:   m.UsersID,
		AdminID:   m.AdminID,
		Username:  m.Username,
		Email:     m.Email,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
	}
}
