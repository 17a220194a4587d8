// internals/features/people/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentModel struct {
	// PK
	StudentsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:students_id" json:"students_id"`

	// Satu profil student per user (role user wajib "student", dicek di handler)
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;column:user_id" json:"user_id"`

	// Biodata
	FirstName string    `gorm:"type:varchar(50);not null;column:first_name" json:"first_name"`
	LastName  string    `gorm:"type:varchar(50);not null;column:last_name" json:"last_name"`
	Dob       time.Time `gorm:"type:date;not null;column:dob" json:"dob"`
	Gender    string    `gorm:"type:varchar(10);not null;column:gender" json:"gender"`
	Email     string    `gorm:"type:varchar(100);uniqueIndex;not null;column:email" json:"email"`
	Phone     string    `gorm:"type:varchar(15);not null;column:phone" json:"phone"`
	Address   *string   `gorm:"type:varchar(255);column:address" json:"address,omitempty"`

	// Audit
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (StudentModel) TableName() string { return "students" }
