// internals/features/academics/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ClassModel struct {
	// PK
	ClassesID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:classes_id" json:"classes_id"`

	Name string `gorm:"type:varchar(100);not null;column:name" json:"name"`

	// Referensi (cek di handler, bukan constraint DB)
	TeacherID uuid.UUID `gorm:"type:uuid;not null;index;column:teacher_id" json:"teacher_id"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;index;column:course_id" json:"course_id"`

	// Audit
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ClassModel) TableName() string { return "classes" }

// Link table many-to-many Class ↔ Subject. Dikelola manual (tanpa
// association gorm) supaya migrasi tetap bebas constraint FK.
type ClassSubjectModel struct {
	ClassID   uuid.UUID `gorm:"type:uuid;primaryKey;column:class_id" json:"class_id"`
	SubjectID uuid.UUID `gorm:"type:uuid;primaryKey;column:subject_id" json:"subject_id"`
}

func (ClassSubjectModel) TableName() string { return "class_subjects" }
