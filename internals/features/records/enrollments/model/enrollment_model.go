// internals/features/records/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Join entity Student ↔ Course. Tidak ada keunikan bisnis:
// student boleh terdaftar beberapa kali di course yang sama.
type EnrollmentModel struct {
	// PK
	EnrollmentsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:enrollments_id" json:"enrollments_id"`

	// Referensi (cek di handler)
	StudentID uuid.UUID `gorm:"type:uuid;not null;index;column:student_id" json:"student_id"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;index;column:course_id" json:"course_id"`

	EnrolledAt time.Time `gorm:"column:enrolled_at;autoCreateTime" json:"enrolled_at"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }
