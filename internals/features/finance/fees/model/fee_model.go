// internals/features/finance/fees/model/fee_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

/* ===================== ENUM ===================== */

// Status tagihan. Disimpan kapital di DB ("Paid"/"Pending"/"Overdue"),
// input di-normalisasi saat Scan.
type FeeStatus string

const (
	FeePaid    FeeStatus = "Paid"
	FeePending FeeStatus = "Pending"
	FeeOverdue FeeStatus = "Overdue"
)

func (s *FeeStatus) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("fee status: tipe tidak dikenal %T", value)
	}
	switch strings.ToLower(raw) {
	case "paid":
		*s = FeePaid
	case "pending":
		*s = FeePending
	case "overdue":
		*s = FeeOverdue
	default:
		return fmt.Errorf("fee status tidak dikenal: %q", raw)
	}
	return nil
}

func (s FeeStatus) Value() (driver.Value, error) {
	return string(s), nil
}

/* ===================== MODEL ===================== */

type FeeModel struct {
	// PK
	FeesID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:fees_id" json:"fees_id"`

	// Referensi (cek di handler)
	StudentID uuid.UUID `gorm:"type:uuid;not null;index;column:student_id" json:"student_id"`

	Amount  float64   `gorm:"type:numeric(12,2);not null;column:amount" json:"amount"`
	Status  FeeStatus `gorm:"type:varchar(10);not null;column:status" json:"status"`
	DueDate time.Time `gorm:"type:date;not null;column:due_date" json:"due_date"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (FeeModel) TableName() string { return "fees" }
