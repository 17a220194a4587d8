package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	fModel "sekolahku_backend/internals/features/finance/fees/model"
)

func validFeeReq() CreateFeeRequest {
	return CreateFeeRequest{
		StudentID: uuid.New(),
		Amount:    150000.50,
		Status:    "Pending",
		DueDate:   "2026-09-30",
	}
}

func TestCreateFeeRequestValidation(t *testing.T) {
	v := validator.New()

	req := validFeeReq()
	if err := v.Struct(&req); err != nil {
		t.Fatalf("payload valid ditolak: %v", err)
	}

	mutations := []struct {
		name   string
		mutate func(*CreateFeeRequest)
	}{
		{"amount nol", func(r *CreateFeeRequest) { r.Amount = 0 }},
		{"amount negatif", func(r *CreateFeeRequest) { r.Amount = -10 }},
		{"status di luar enum", func(r *CreateFeeRequest) { r.Status = "Cancelled" }},
		{"status beda kapitalisasi", func(r *CreateFeeRequest) { r.Status = "paid" }},
		{"due_date bukan tanggal", func(r *CreateFeeRequest) { r.DueDate = "30/09/2026" }},
		{"student_id kosong", func(r *CreateFeeRequest) { r.StudentID = uuid.Nil }},
	}
	for _, m := range mutations {
		t.Run(m.name, func(t *testing.T) {
			req := validFeeReq()
			m.mutate(&req)
			if err := v.Struct(&req); err == nil {
				t.Fatal("payload rusak seharusnya ditolak")
			}
		})
	}
}

func TestNewFeeResponseCarriesCreatedAt(t *testing.T) {
	now := time.Now()
	resp := NewFeeResponse(&fModel.FeeModel{
		FeesID:    uuid.New(),
		StudentID: uuid.New(),
		Amount:    100,
		Status:    fModel.FeePaid,
		DueDate:   now,
		CreatedAt: now,
	})
	if resp.CreatedAt.IsZero() {
		t.Fatal("created_at tidak ikut di response")
	}
	if !resp.CreatedAt.Equal(now) {
		t.Fatalf("CreatedAt = %v, want %v", resp.CreatedAt, now)
	}
}

func TestCreateFeeRequestToModel(t *testing.T) {
	req := validFeeReq()
	m := req.ToModel()
	if m.Status != fModel.FeePending {
		t.Fatalf("Status = %q, want Pending", m.Status)
	}
	if got := m.DueDate.Format(dateLayout); got != "2026-09-30" {
		t.Fatalf("DueDate = %s, want 2026-09-30", got)
	}
	if m.Amount != 150000.50 {
		t.Fatalf("Amount = %v", m.Amount)
	}
}
