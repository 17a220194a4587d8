// internals/features/people/parents/dto/parent_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	pModel "sekolahku_backend/internals/features/people/parents/model"
)

/* ===================== REQUESTS ===================== */

type CreateParentRequest struct {
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	FirstName string    `json:"first_name" validate:"required,min=2,max=50"`
	LastName  string    `json:"last_name" validate:"required,min=2,max=50"`
	Email     string    `json:"email" validate:"required,email,max=100"`
	Phone     string    `json:"phone" validate:"required,min=10,max=15"`
	Relation  string    `json:"relation" validate:"required,min=2,max=50"`
}

func (r *CreateParentRequest) ToModel() *pModel.ParentModel {
	return &pModel.ParentModel{
		UserID:    r.UserID,
		StudentID: r.StudentID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Relation:  r.Relation,
	}
}

// PUT = full replace
type UpdateParentRequest struct {
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	FirstName string    `json:"first_name" validate:"required,min=2,max=50"`
	LastName  string    `json:"last_name" validate:"required,min=2,max=50"`
	Email     string    `json:"email" validate:"required,email,max=100"`
	Phone     string    `json:"phone" validate:"required,min=10,max=15"`
	Relation  string    `json:"relation" validate:"required,min=2,max=50"`
}

func (r *UpdateParentRequest) ApplyToModel(m *pModel.ParentModel) {
	m.UserID = r.UserID
	m.StudentID = r.StudentID
	m.FirstName = r.FirstName
	m.LastName = r.LastName
	m.Email = r.Email
	m.Phone = r.Phone
	m.Relation = r.Relation
}

/* ===================== RESPONSES ===================== */

type ParentResponse struct {
	ParentsID uuid.UUID `json:"parents_id"`
	UserID    uuid.UUID `json:"user_id"`
	StudentID uuid.UUID `json:"student_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Relation  string    `json:"relation"`
	CreatedAt time.Time `json:"created_at"`
}

func NewParentResponse(m *pModel.ParentModel) *ParentResponse {
	if m == nil {
		return nil
	}
	return &ParentResponse{
		ParentsID: m.ParentsID,
		UserID:    m.UserID,
		StudentID: m.StudentID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Phone:     m.Phone,
		Relation:  m.Relation,
		CreatedAt: m.CreatedAt,
	}
}
