// internals/features/users/admins/dto/admin_dto.go
package dto

import (
	"time"

	aModel "sekolahku_backend/internals/features/users/admins/model"
)

/* ===================== REQUESTS ===================== */

type CreateAdminRequest struct {
	Username string `json:"username" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=255"`
}

func (r *CreateAdminRequest) ToModel(hashedPassword string) *aModel.AdminModel {
	return &aModel.AdminModel{
		Username:       r.Username,
		Email:          r.Email,
		HashedPassword: hashedPassword,
	}
}

// PUT = full replace: field wajib sama seperti create.
type UpdateAdminRequest struct {
	Username string `json:"username" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=255"`
}

func (r *UpdateAdminRequest) ApplyToModel(m *aModel.AdminModel, hashedPassword string) {
	m.Username = r.Username
	m.Email = r.Email
	m.HashedPassword = hashedPassword
}

/* ===================== RESPONSES ===================== */

type AdminResponse struct {
	AdminsID  string    `json:"admins_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewAdminResponse(m *aModel.AdminModel) *AdminResponse {
	if m == nil {
		return nil
	}
	return &AdminResponse{
		AdminsID:  m.AdminsID.String(),
		Username:  m.Username,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
