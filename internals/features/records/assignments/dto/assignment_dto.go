// internals/features/records/assignments/dto/assignment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	aModel "sekolahku_backend/internals/features/records/assignments/model"
)

const dateLayout = "2006-01-02"

/* ===================== REQUESTS ===================== */

type CreateAssignmentRequest struct {
	Title       string    `json:"title" validate:"required,min=2,max=100"`
	Description *string   `json:"description" validate:"omitempty,max=255"`
	DueDate     string    `json:"due_date" validate:"required,datetime=2006-01-02"`
	CourseID    uuid.UUID `json:"course_id" validate:"required"`
	TeacherID   uuid.UUID `json:"teacher_id" validate:"required"`
}

type UpdateAssignmentRequest struct {
	Title       string    `json:"title" validate:"required,min=2,max=100"`
	Description *string   `json:"description" validate:"omitempty,max=255"`
	DueDate     string    `json:"due_date" validate:"required,datetime=2006-01-02"`
	CourseID    uuid.UUID `json:"course_id" validate:"required"`
	TeacherID   uuid.UUID `json:"teacher_id" validate:"required"`
}

func (r *CreateAssignmentRequest) ToModel() *aModel.AssignmentModel {
	due, _ := time.Parse(dateLayout, r.DueDate) // format sudah lolos validasi
	return &aModel.AssignmentModel{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     due,
		CourseID:    r.CourseID,
		TeacherID:   r.TeacherID,
	}
}

// PUT = full replace
func (r *UpdateAssignmentRequest) ApplyToModel(m *aModel.AssignmentModel) {
	due, _ := time.Parse(dateLayout, r.DueDate)
	m.Title = r.Title
	m.Description = r.Description
	m.DueDate = due
	m.CourseID = r.CourseID
	m.TeacherID = r.TeacherID
}

/* ===================== RESPONSES ===================== */

type AssignmentResponse struct {
	AssignmentsID uuid.UUID `json:"assignments_id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description,omitempty"`
	DueDate       string    `json:"due_date"`
	CourseID      uuid.UUID `json:"course_id"`
	TeacherID     uuid.UUID `json:"teacher_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewAssignmentResponse(m *aModel.AssignmentModel) *AssignmentResponse {
	if m == nil {
		return nil
	}
	return &AssignmentResponse{
		AssignmentsID: m.AssignmentsID,
		Title:         m.Title,
		Description:   m.Description,
		DueDate:       m.DueDate.Format(dateLayout),
		CourseID:      m.CourseID,
		TeacherID:     m.TeacherID,
		CreatedAt:     m.CreatedAt,
	}
}
