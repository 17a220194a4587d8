// internals/features/records/attendances/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	aModel "sekolahku_backend/internals/features/records/attendances/model"
)

const dateLayout = "2006-01-02"

/* ===================== REQUESTS ===================== */

type CreateAttendanceRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	ClassID   uuid.UUID `json:"class_id" validate:"required"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string    `json:"status" validate:"required,oneof=Present Absent"`
}

type UpdateAttendanceRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	ClassID   uuid.UUID `json:"class_id" validate:"required"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string    `json:"status" validate:"required,oneof=Present Absent"`
}

func (r *CreateAttendanceRequest) ToModel() *aModel.AttendanceModel {
	date, _ := time.Parse(dateLayout, r.Date) // format sudah lolos validasi
	return &aModel.AttendanceModel{
		StudentID: r.StudentID,
		ClassID:   r.ClassID,
		Date:      date,
		Status:    aModel.AttendanceStatus(r.Status),
	}
}

// PUT = full replace
func (r *UpdateAttendanceRequest) ApplyToModel(m *aModel.AttendanceModel) {
	date, _ := time.Parse(dateLayout, r.Date)
	m.StudentID = r.StudentID
	m.ClassID = r.ClassID
	m.Date = date
	m.Status = aModel.AttendanceStatus(r.Status)
}

/* ===================== RESPONSES ===================== */

type AttendanceResponse struct {
	AttendanceID uuid.UUID `json:"attendance_id"`
	StudentID    uuid.UUID `json:"student_id"`
	ClassID      uuid.UUID `json:"class_id"`
	Date         string    `json:"date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewAttendanceResponse(m *aModel.AttendanceModel) *AttendanceResponse {
	if m == nil {
		return nil
	}
	return &AttendanceResponse{
		AttendanceID: m.AttendanceID,
		StudentID:    m.StudentID,
		ClassID:      m.ClassID,
		Date:         m.Date.Format(dateLayout),
		Status:       string(m.Status),
		CreatedAt:    m.CreatedAt,
	}
}
