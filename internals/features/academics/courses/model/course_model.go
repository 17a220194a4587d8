// internals/features/academics/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type CourseModel struct {
	// PK
	CoursesID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:courses_id" json:"courses_id"`

	Name        string `gorm:"type:varchar(100);not null;column:name" json:"name"`
	Description string `gorm:"type:text;not null;column:description" json:"description"`

	// Audit
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CourseModel) TableName() string { return "courses" }
