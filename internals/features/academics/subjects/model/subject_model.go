// internals/features/academics/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type SubjectModel struct {
	// PK
	SubjectsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subjects_id" json:"subjects_id"`

	Name        string  `gorm:"type:varchar(100);not null;column:name" json:"name"`
	Description *string `gorm:"type:text;column:description" json:"description,omitempty"`

	// Referensi (cek di handler)
	CourseID  uuid.UUID `gorm:"type:uuid;not null;index;column:course_id" json:"course_id"`
	TeacherID uuid.UUID `gorm:"type:uuid;not null;index;column:teacher_id" json:"teacher_id"`

	// Audit
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SubjectModel) TableName() string { return "subjects" }
