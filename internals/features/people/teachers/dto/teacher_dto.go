// internals/features/people/teachers/dto/teacher_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	tModel "sekolahku_backend/internals/features/people/teachers/model"
)

/* ===================== REQUESTS ===================== */

type CreateTeacherRequest struct {
	UserID     uuid.UUID `json:"user_id" validate:"required"`
	FirstName  string    `json:"first_name" validate:"required,min=2,max=50"`
	LastName   string    `json:"last_name" validate:"required,min=2,max=50"`
	Email      string    `json:"email" validate:"required,email,max=100"`
	Phone      string    `json:"phone" validate:"required,min=10,max=15"`
	Department *string   `json:"department" validate:"omitempty,max=100"`
}

func (r *CreateTeacherRequest) ToModel() *tModel.TeacherModel {
	return &tModel.TeacherModel{
		UserID:     r.UserID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Phone:      r.Phone,
		Department: r.Department,
	}
}

// PUT = full replace
type UpdateTeacherRequest struct {
	UserID     uuid.UUID `json:"user_id" validate:"required"`
	FirstName  string    `json:"first_name" validate:"required,min=2,max=50"`
	LastName   string    `json:"last_name" validate:"required,min=2,max=50"`
	Email      string    `json:"email" validate:"required,email,max=100"`
	Phone      string    `json:"phone" validate:"required,min=10,max=15"`
	Department *string   `json:"department" validate:"omitempty,max=100"`
}

func (r *UpdateTeacherRequest) ApplyToModel(m *tModel.TeacherModel) {
	m.UserID = r.UserID
	m.FirstName = r.FirstName
	m.LastName = r.LastName
	m.Email = r.Email
	m.Phone = r.Phone
	m.Department = r.Department
}

/* ===================== RESPONSES ===================== */

type TeacherResponse struct {
	TeachersID uuid.UUID `json:"teachers_id"`
	UserID     uuid.UUID `json:"user_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Department *string   `json:"department,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewTeacherResponse(m *tModel.TeacherModel) *TeacherResponse {
	if m == nil {
		return nil
	}
	return &TeacherResponse{
		TeachersID: m.TeachersID,
		UserID:     m.UserID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Email:      m.Email,
		Phone:      m.Phone,
		Department: m.Department,
		CreatedAt:  m.CreatedAt,
	}
}
