package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	aModel "sekolahku_backend/internals/features/records/attendances/model"
)

func TestCreateAttendanceRequestValidation(t *testing.T) {
	v := validator.New()

	req := CreateAttendanceRequest{
		StudentID: uuid.New(),
		ClassID:   uuid.New(),
		Date:      "2026-08-31",
		Status:    "Present",
	}
	if err := v.Struct(&req); err != nil {
		t.Fatalf("payload valid ditolak: %v", err)
	}

	req.Status = "Late"
	if err := v.Struct(&req); err == nil {
		t.Fatal("status di luar enum seharusnya ditolak")
	}

	req.Status = "Absent"
	req.Date = "31-08-2026"
	if err := v.Struct(&req); err == nil {
		t.Fatal("format tanggal salah seharusnya ditolak")
	}
}

func TestCreateAttendanceRequestToModel(t *testing.T) {
	req := CreateAttendanceRequest{
		StudentID: uuid.New(),
		ClassID:   uuid.New(),
		Date:      "2026-08-31",
		Status:    "Absent",
	}
	m := req.ToModel()
	if m.Status != aModel.AttendanceAbsent {
		t.Fatalf("Status = %q", m.Status)
	}
	if got := m.Date.Format(dateLayout); got != "2026-08-31" {
		t.Fatalf("Date = %s", got)
	}
}

func TestNewAttendanceResponseCarriesCreatedAt(t *testing.T) {
	now := time.Now()
	resp := NewAttendanceResponse(&aModel.AttendanceModel{
		AttendanceID: uuid.New(),
		StudentID:    uuid.New(),
		ClassID:      uuid.New(),
		Date:         now,
		Status:       aModel.AttendancePresent,
		CreatedAt:    now,
	})
	if resp.CreatedAt.IsZero() {
		t.Fatal("created_at tidak ikut di response")
	}
}
