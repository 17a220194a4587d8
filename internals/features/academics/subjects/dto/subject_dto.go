// internals/features/academics/subjects/dto/subject_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	sModel "sekolahku_backend/internals/features/academics/subjects/model"
)

/* ===================== REQUESTS ===================== */

type CreateSubjectRequest struct {
	Name        string    `json:"name" validate:"required,min=2,max=100"`
	Description *string   `json:"description" validate:"omitempty,max=255"`
	CourseID    uuid.UUID `json:"course_id" validate:"required"`
	TeacherID   uuid.UUID `json:"teacher_id" validate:"required"`
}

func (r *CreateSubjectRequest) ToModel() *sModel.SubjectModel {
	return &sModel.SubjectModel{
		Name:        r.Name,
		Description: r.Description,
		CourseID:    r.CourseID,
		TeacherID:   r.TeacherID,
	}
}

// PUT = full replace
type UpdateSubjectRequest struct {
	Name        string    `json:"name" validate:"required,min=2,max=100"`
	Description *string   `json:"description" validate:"omitempty,max=255"`
	CourseID    uuid.UUID `json:"course_id" validate:"required"`
	TeacherID   uuid.UUID `json:"teacher_id" validate:"required"`
}

func (r *UpdateSubjectRequest) ApplyToModel(m *sModel.SubjectModel) {
	m.Name = r.Name
	m.Description = r.Description
	m.CourseID = r.CourseID
	m.TeacherID = r.TeacherID
}

/* ===================== RESPONSES ===================== */

type SubjectResponse struct {
	SubjectsID  uuid.UUID `json:"subjects_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CourseID    uuid.UUID `json:"course_id"`
	TeacherID   uuid.UUID `json:"teacher_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewSubjectResponse(m *sModel.SubjectModel) *SubjectResponse {
	if m == nil {
		return nil
	}
	return &SubjectResponse{
		SubjectsID:  m.SubjectsID,
		Name:        m.Name,
		Description: m.Description,
		CourseID:    m.CourseID,
		TeacherID:   m.TeacherID,
		CreatedAt:   m.CreatedAt,
	}
}
