// internals/features/people/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	sModel "sekolahku_backend/internals/features/people/students/model"
)

const dateLayout = "2006-01-02"

/* ===================== REQUESTS ===================== */

type CreateStudentRequest struct {
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	FirstName string    `json:"first_name" validate:"required,min=2,max=50"`
	LastName  string    `json:"last_name" validate:"required,min=2,max=50"`
	Dob       string    `json:"dob" validate:"required,datetime=2006-01-02"`
	Gender    string    `json:"gender" validate:"required,min=1,max=10"`
	Email     string    `json:"email" validate:"required,email,max=100"`
	Phone     string    `json:"phone" validate:"required,min=10,max=15"`
	Address   *string   `json:"address" validate:"omitempty,max=255"`
}

func (r *CreateStudentRequest) ToModel() *sModel.StudentModel {
	dob, _ := time.Parse(dateLayout, r.Dob) // format sudah lolos validasi
	return &sModel.StudentModel{
		UserID:    r.UserID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Dob:       dob,
		Gender:    r.Gender,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
	}
}

// PUT = full replace
type UpdateStudentRequest struct {
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	FirstName string    `json:"first_name" validate:"required,min=2,max=50"`
	LastName  string    `json:"last_name" validate:"required,min=2,max=50"`
	Dob       string    `json:"dob" validate:"required,datetime=2006-01-02"`
	Gender    string    `json:"gender" validate:"required,min=1,max=10"`
	Email     string    `json:"email" validate:"required,email,max=100"`
	Phone     string    `json:"phone" validate:"required,min=10,max=15"`
	Address   *string   `json:"address" validate:"omitempty,max=255"`
}

func (r *UpdateStudentRequest) ApplyToModel(m *sModel.StudentModel) {
	dob, _ := time.Parse(dateLayout, r.Dob)
	m.UserID = r.UserID
	m.FirstName = r.FirstName
	m.LastName = r.LastName
	m.Dob = dob
	m.Gender = r.Gender
	m.Email = r.Email
	m.Phone = r.Phone
	m.Address = r.Address
}

/* ===================== RESPONSES ===================== */

type StudentResponse struct {
	StudentsID uuid.UUID `json:"students_id"`
	UserID     uuid.UUID `json:"user_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Dob        string    `json:"dob"`
	Gender     string    `json:"gender"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    *string   `json:"address,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewStudentResponse(m *sModel.StudentModel) *StudentResponse {
	if m == nil {
		return nil
	}
	return &StudentResponse{
		StudentsID: m.StudentsID,
		UserID:     m.UserID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Dob:        m.Dob.Format(dateLayout),
		Gender:     m.Gender,
		Email:      m.Email,
		Phone:      m.Phone,
		Address:    m.Address,
		CreatedAt:  m.CreatedAt,
	}
}
