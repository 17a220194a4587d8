// internals/features/records/assignments/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type AssignmentModel struct {
	// PK
	AssignmentsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:assignments_id" json:"assignments_id"`

	Title       string  `gorm:"type:varchar(100);not null;column:title" json:"title"`
	Description *string `gorm:"type:text;column:description" json:"description,omitempty"`

	DueDate time.Time `gorm:"type:date;not null;column:due_date" json:"due_date"`

	// Referensi (cek di handler)
	CourseID  uuid.UUID `gorm:"type:uuid;not null;index;column:course_id" json:"course_id"`
	TeacherID uuid.UUID `gorm:"type:uuid;not null;index;column:teacher_id" json:"teacher_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AssignmentModel) TableName() string { return "assignments" }
