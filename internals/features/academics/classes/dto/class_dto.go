// internals/features/academics/classes/dto/class_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	cModel "sekolahku_backend/internals/features/academics/classes/model"
)

/* ===================== REQUESTS ===================== */

type CreateClassRequest struct {
	Name      string    `json:"name" validate:"required,min=2,max=100"`
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
	CourseID  uuid.UUID `json:"course_id" validate:"required"`

	// Opsional: isi awal link class_subjects (semua harus subject valid)
	SubjectIDs []uuid.UUID `json:"subject_ids" validate:"omitempty,dive,required"`
}

func (r *CreateClassRequest) ToModel() *cModel.ClassModel {
	return &cModel.ClassModel{
		Name:      r.Name,
		TeacherID: r.TeacherID,
		CourseID:  r.CourseID,
	}
}

// PUT = full replace; subject_ids mengganti seluruh link yang ada.
type UpdateClassRequest struct {
	Name       string      `json:"name" validate:"required,min=2,max=100"`
	TeacherID  uuid.UUID   `json:"teacher_id" validate:"required"`
	CourseID   uuid.UUID   `json:"course_id" validate:"required"`
	SubjectIDs []uuid.UUID `json:"subject_ids" validate:"omitempty,dive,required"`
}

func (r *UpdateClassRequest) ApplyToModel(m *cModel.ClassModel) {
	m.Name = r.Name
	m.TeacherID = r.TeacherID
	m.CourseID = r.CourseID
}

/* ===================== RESPONSES ===================== */

type ClassResponse struct {
	ClassesID  uuid.UUID   `json:"classes_id"`
	Name       string      `json:"name"`
	TeacherID  uuid.UUID   `json:"teacher_id"`
	CourseID   uuid.UUID   `json:"course_id"`
	SubjectIDs []uuid.UUID `json:"subject_ids"`
	CreatedAt  time.Time   `json:"created_at"`
}

func NewClassResponse(m *cModel.ClassModel, subjectIDs []uuid.UUID) *ClassResponse {
	if m == nil {
		return nil
	}
	if subjectIDs == nil {
		subjectIDs = []uuid.UUID{}
	}
	return &ClassResponse{
		ClassesID:  m.ClassesID,
		Name:       m.Name,
		TeacherID:  m.TeacherID,
		CourseID:   m.CourseID,
		SubjectIDs: subjectIDs,
		CreatedAt:  m.CreatedAt,
	}
}
