// internals/features/records/submissions/model/submission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type SubmissionModel struct {
	// PK
	SubmissionsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:submissions_id" json:"submissions_id"`

	// Referensi (cek di handler)
	AssignmentID uuid.UUID `gorm:"type:uuid;not null;index;column:assignment_id" json:"assignment_id"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;index;column:student_id" json:"student_id"`

	SubmittedAt time.Time `gorm:"column:submitted_at;autoCreateTime" json:"submitted_at"`

	// Nilai huruf pendek ("A", "B+", dst). Kosong = belum dinilai.
	Grade *string `gorm:"type:varchar(2);column:grade" json:"grade,omitempty"`
}

func (SubmissionModel) TableName() string { return "submissions" }
