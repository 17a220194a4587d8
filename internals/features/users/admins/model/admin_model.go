// internals/features/users/admins/model/admin_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type AdminModel struct {
	// PK
	AdminsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:admins_id" json:"admins_id"`

	// Identitas
	Username string `gorm:"type:varchar(50);not null;column:username" json:"username"`
	Email    string `gorm:"type:varchar(100);uniqueIndex;not null;column:email" json:"email"`

	// Hash bcrypt, tidak pernah diserialisasi keluar
	HashedPassword string `gorm:"type:varchar(255);not null;column:hashed_password" json:"-"`

	// Audit
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AdminModel) TableName() string { return "admins" }
