// internals/features/users/users/model/user_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
)

/*
Role (sesuai ENUM di DB):
- "student"
- "teacher"
- "parent"
*/
type UserRole string

const (
	UserRoleStudent UserRole = UserRole(constants.RoleStudent)
	UserRoleTeacher UserRole = UserRole(constants.RoleTeacher)
	UserRoleParent  UserRole = UserRole(constants.RoleParent)
)

// Pastikan selalu lower-case saat scan/save (aman bila suatu saat sumbernya mixed-case)
func (r *UserRole) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*r = UserRole(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*r = UserRole(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*r = ""
	default:
		return fmt.Errorf("user role: tipe tidak dikenal %T", value)
	}
	return nil
}
func (r UserRole) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(r))), nil
}

type UserModel struct {
	// PK
	UsersID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:users_id" json:"users_id"`

	// Pemilik (cek referensi di handler, bukan constraint DB)
	AdminID uuid.UUID `gorm:"type:uuid;not null;index;column:admin_id" json:"admin_id"`

	// Identitas
	Username string   `gorm:"type:varchar(50);uniqueIndex;not null;column:username" json:"username"`
	Email    string   `gorm:"type:varchar(100);uniqueIndex;not null;column:email" json:"email"`
	Role     UserRole `gorm:"type:varchar(20);not null;column:role" json:"role"`

	HashedPassword string `gorm:"type:varchar(255);not null;column:hashed_password" json:"-"`

	// Audit
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserModel) TableName() string { return "users" }
