// internals/features/records/attendances/model/attendance_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

/* ===================== ENUM ===================== */

// Status kehadiran. Disimpan kapital di DB ("Present"/"Absent"),
// input di-normalisasi saat Scan.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
)

func (s *AttendanceStatus) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("attendance status: tipe tidak dikenal %T", value)
	}
	switch strings.ToLower(raw) {
	case "present":
		*s = AttendancePresent
	case "absent":
		*s = AttendanceAbsent
	default:
		return fmt.Errorf("attendance status tidak dikenal: %q", raw)
	}
	return nil
}

func (s AttendanceStatus) Value() (driver.Value, error) {
	return string(s), nil
}

/* ===================== MODEL ===================== */

type AttendanceModel struct {
	// PK (mengikuti nama tabel singular-feel: attendance_id)
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	// Referensi (cek di handler)
	StudentID uuid.UUID `gorm:"type:uuid;not null;index;column:student_id" json:"student_id"`
	ClassID   uuid.UUID `gorm:"type:uuid;not null;index;column:class_id" json:"class_id"`

	Date   time.Time        `gorm:"type:date;not null;column:date" json:"date"`
	Status AttendanceStatus `gorm:"type:varchar(10);not null;column:status" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AttendanceModel) TableName() string { return "attendance" }
