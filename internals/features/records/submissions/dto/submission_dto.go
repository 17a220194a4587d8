// internals/features/records/submissions/dto/submission_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	sModel "sekolahku_backend/internals/features/records/submissions/model"
)

/* ===================== REQUESTS ===================== */

type CreateSubmissionRequest struct {
	AssignmentID uuid.UUID `json:"assignment_id" validate:"required"`
	StudentID    uuid.UUID `json:"student_id" validate:"required"`
	Grade        *string   `json:"grade" validate:"omitempty,max=2"`
}

type UpdateSubmissionRequest struct {
	AssignmentID uuid.UUID `json:"assignment_id" validate:"required"`
	StudentID    uuid.UUID `json:"student_id" validate:"required"`
	Grade        *string   `json:"grade" validate:"omitempty,max=2"`
}

func (r *CreateSubmissionRequest) ToModel() *sModel.SubmissionModel {
	return &sModel.SubmissionModel{
		AssignmentID: r.AssignmentID,
		StudentID:    r.StudentID,
		Grade:        r.Grade,
	}
}

// PUT = full replace; submitted_at tidak pernah ikut diubah.
func (r *UpdateSubmissionRequest) ApplyToModel(m *sModel.SubmissionModel) {
	m.AssignmentID = r.AssignmentID
	m.StudentID = r.StudentID
	m.Grade = r.Grade
}

/* ===================== RESPONSES ===================== */

type SubmissionResponse struct {
	SubmissionsID uuid.UUID `json:"submissions_id"`
	AssignmentID  uuid.UUID `json:"assignment_id"`
	StudentID     uuid.UUID `json:"student_id"`
	SubmittedAt   time.Time `json:"submitted_at"`
	Grade         *string   `json:"grade,omitempty"`
}

func NewSubmissionResponse(m *sModel.SubmissionModel) *SubmissionResponse {
	if m == nil {
		return nil
	}
	return &SubmissionResponse{
		SubmissionsID: m.SubmissionsID,
		AssignmentID:  m.AssignmentID,
		StudentID:     m.StudentID,
		SubmittedAt:   m.SubmittedAt,
		Grade:         m.Grade,
	}
}
