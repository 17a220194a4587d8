package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func validStudentReq() CreateStudentRequest {
	return CreateStudentRequest{
		UserID:    uuid.New(),
		FirstName: "Budi",
		LastName:  "Santoso",
		Dob:       "2010-04-17",
		Gender:    "male",
		Email:     "budi@example.com",
		Phone:     "081234567890",
	}
}

func TestCreateStudentRequestValidation(t *testing.T) {
	v := validator.New()

	req := validStudentReq()
	if err := v.Struct(&req); err != nil {
		t.Fatalf("payload valid ditolak: %v", err)
	}

	mutations := []struct {
		name   string
		mutate func(*CreateStudentRequest)
	}{
		{"user_id kosong", func(r *CreateStudentRequest) { r.UserID = uuid.Nil }},
		{"first_name terlalu pendek", func(r *CreateStudentRequest) { r.FirstName = "B" }},
		{"dob bukan tanggal", func(r *CreateStudentRequest) { r.Dob = "17-04-2010" }},
		{"dob kosong", func(r *CreateStudentRequest) { r.Dob = "" }},
		{"email tidak valid", func(r *CreateStudentRequest) { r.Email = "bukan-email" }},
		{"phone terlalu pendek", func(r *CreateStudentRequest) { r.Phone = "0812" }},
	}
	for _, m := range mutations {
		t.Run(m.name, func(t *testing.T) {
			req := validStudentReq()
			m.mutate(&req)
			if err := v.Struct(&req); err == nil {
				t.Fatal("payload rusak seharusnya ditolak")
			}
		})
	}
}

func TestCreateStudentRequestToModelParsesDob(t *testing.T) {
	req := validStudentReq()
	m := req.ToModel()
	if got := m.Dob.Format(dateLayout); got != "2010-04-17" {
		t.Fatalf("Dob = %s, want 2010-04-17", got)
	}
	if m.UserID != req.UserID {
		t.Fatalf("UserID tidak ikut: %s", m.UserID)
	}
}
