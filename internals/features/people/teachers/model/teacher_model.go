// internals/features/people/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type TeacherModel struct {
	// PK
	TeachersID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teachers_id" json:"teachers_id"`

	// Satu profil teacher per user (role user wajib "teacher", dicek di handler)
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;column:user_id" json:"user_id"`

	// Biodata
	FirstName  string  `gorm:"type:varchar(50);not null;column:first_name" json:"first_name"`
	LastName   string  `gorm:"type:varchar(50);not null;column:last_name" json:"last_name"`
	Email      string  `gorm:"type:varchar(100);uniqueIndex;not null;column:email" json:"email"`
	Phone      string  `gorm:"type:varchar(15);not null;column:phone" json:"phone"`
	Department *string `gorm:"type:varchar(100);column:department" json:"department,omitempty"`

	// Audit
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TeacherModel) TableName() string { return "teachers" }
