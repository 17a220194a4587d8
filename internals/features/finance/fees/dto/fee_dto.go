// internals/features/finance/fees/dto/fee_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	fModel "sekolahku_backend/internals/features/finance/fees/model"
)

const dateLayout = "2006-01-02"

/* ===================== REQUESTS ===================== */

type CreateFeeRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Amount    float64   `json:"amount" validate:"required,gt=0"`
	Status    string    `json:"status" validate:"required,oneof=Paid Pending Overdue"`
	DueDate   string    `json:"due_date" validate:"required,datetime=2006-01-02"`
}

type UpdateFeeRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Amount    float64   `json:"amount" validate:"required,gt=0"`
	Status    string    `json:"status" validate:"required,oneof=Paid Pending Overdue"`
	DueDate   string    `json:"due_date" validate:"required,datetime=2006-01-02"`
}

func (r *CreateFeeRequest) ToModel() *fModel.FeeModel {
	due, _ := time.Parse(dateLayout, r.DueDate) // format sudah lolos validasi
	return &fModel.FeeModel{
		StudentID: r.StudentID,
		Amount:    r.Amount,
		Status:    fModel.FeeStatus(r.Status),
		DueDate:   due,
	}
}

// PUT = full replace
func (r *UpdateFeeRequest) ApplyToModel(m *fModel.FeeModel) {
	due, _ := time.Parse(dateLayout, r.DueDate)
	m.StudentID = r.StudentID
	m.Amount = r.Amount
	m.Status = fModel.FeeStatus(r.Status)
	m.DueDate = due
}

/* ===================== RESPONSES ===================== */

type FeeResponse struct {
	FeesID    uuid.UUID `json:"fees_id"`
	StudentID uuid.UUID `json:"student_id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	DueDate   string    `json:"due_date"`
	CreatedAt time.Time `json:"created_at"`
}

func NewFeeResponse(m *fModel.FeeModel) *FeeResponse {
	if m == nil {
		return nil
	}
	return &FeeResponse{
		FeesID:    m.FeesID,
		StudentID: m.StudentID,
		Amount:    m.Amount,
		Status:    string(m.Status),
		DueDate:   m.DueDate.Format(dateLayout),
		CreatedAt: m.CreatedAt,
	}
}
