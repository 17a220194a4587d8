// internals/features/people/parents/model/parent_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ParentModel struct {
	// PK
	ParentsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:parents_id" json:"parents_id"`

	// Maksimal satu parent per user DAN per student (role user wajib "parent")
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;column:user_id" json:"user_id"`
	StudentID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;column:student_id" json:"student_id"`

	// Biodata
	FirstName string `gorm:"type:varchar(50);not null;column:first_name" json:"first_name"`
	LastName  string `gorm:"type:varchar(50);not null;column:last_name" json:"last_name"`
	Email     string `gorm:"type:varchar(100);uniqueIndex;not null;column:email" json:"email"`
	Phone     string `gorm:"type:varchar(15);not null;column:phone" json:"phone"`
	Relation  string `gorm:"type:varchar(50);not null;column:relation" json:"relation"`

	// Audit
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ParentModel) TableName() string { return "parents" }
