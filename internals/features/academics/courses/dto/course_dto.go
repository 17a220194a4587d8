// internals/features/academics/courses/dto/course_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	cModel "sekolahku_backend/internals/features/academics/courses/model"
)

/* ===================== REQUESTS ===================== */

type CreateCourseRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=50"`
	Description string `json:"description" validate:"required,min=2,max=255"`
}

func (r *CreateCourseRequest) ToModel() *cModel.CourseModel {
	return &cModel.CourseModel{
		Name:        r.Name,
		Description: r.Description,
	}
}

// PUT = full replace
type UpdateCourseRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=50"`
	Description string `json:"description" validate:"required,min=2,max=255"`
}

func (r *UpdateCourseRequest) ApplyToModel(m *cModel.CourseModel) {
	m.Name = r.Name
	m.Description = r.Description
}

/* ===================== RESPONSES ===================== */

type CourseResponse struct {
	CoursesID   uuid.UUID `json:"courses_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewCourseResponse(m *cModel.CourseModel) *CourseResponse {
	if m == nil {
		return nil
	}
	return &CourseResponse{
		CoursesID:   m.CoursesID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}
