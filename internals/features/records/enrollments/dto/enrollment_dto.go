// internals/features/records/enrollments/dto/enrollment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	eModel "sekolahku_backend/internals/features/records/enrollments/model"
)

/* ===================== REQUESTS ===================== */

type CreateEnrollmentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	CourseID  uuid.UUID `json:"course_id" validate:"required"`
}

type UpdateEnrollmentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	CourseID  uuid.UUID `json:"course_id" validate:"required"`
}

func (r CreateEnrollmentRequest) ToModel() *eModel.EnrollmentModel {
	return &eModel.EnrollmentModel{
		StudentID: r.StudentID,
		CourseID:  r.CourseID,
	}
}

// PUT = full replace; enrolled_at tidak pernah ikut diubah.
func (r UpdateEnrollmentRequest) ApplyToModel(m *eModel.EnrollmentModel) {
	m.StudentID = r.StudentID
	m.CourseID = r.CourseID
}

/* ===================== RESPONSES ===================== */

type EnrollmentResponse struct {
	EnrollmentsID uuid.UUID `json:"enrollments_id"`
	StudentID     uuid.UUID `json:"student_id"`
	CourseID      uuid.UUID `json:"course_id"`
	EnrolledAt    time.Time `json:"enrolled_at"`
}

func NewEnrollmentResponse(m *eModel.EnrollmentModel) *EnrollmentResponse {
	return &EnrollmentResponse{
		EnrollmentsID: m.EnrollmentsID,
		StudentID:     m.StudentID,
		CourseID:      m.CourseID,
		EnrolledAt:    m.EnrolledAt,
	}
}
