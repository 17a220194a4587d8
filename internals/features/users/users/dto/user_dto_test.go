package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	uModel "sekolahku_backend/internals/features/users/users/model"
)

func validUserReq() CreateUserRequest {
	return CreateUserRequest{
		AdminID:  uuid.New(),
		Username: "budi.santoso",
		Email:    "budi@example.com",
		Password: "rahasia-123",
		Role:     uModel.UserRoleStudent,
	}
}

func TestCreateUserRequestValidation(t *testing.T) {
	v := validator.New()

	req := validUserReq()
	if err := v.Struct(&req); err != nil {
		t.Fatalf("payload valid ditolak: %v", err)
	}

	mutations := []struct {
		name   string
		mutate func(*CreateUserRequest)
	}{
		{"username terlalu pendek", func(r *CreateUserRequest) { r.Username = "ab" }},
		{"email tidak valid", func(r *CreateUserRequest) { r.Email = "x@" }},
		{"password terlalu pendek", func(r *CreateUserRequest) { r.Password = "1234567" }},
		{"role di luar enum", func(r *CreateUserRequest) { r.Role = "admin" }},
		{"role kosong", func(r *CreateUserRequest) { r.Role = "" }},
	}
	for _, m := range mutations {
		t.Run(m.name, func(t *testing.T) {
			req := validUserReq()
			m.mutate(&req)
			if err := v.Struct(&req); err == nil {
				t.Fatal("payload rusak seharusnya ditolak")
			}
		})
	}
}

func TestCreateUserRequestToModelNeverStoresPlaintext(t *testing.T) {
	req := validUserReq()
	m := req.ToModel("$2a$10$hashedhashedhashedhashed")
	if m.HashedPassword != "$2a$10$hashedhashedhashedhashed" {
		t.Fatalf("HashedPassword = %q", m.HashedPassword)
	}
	if m.HashedPassword == req.Password {
		t.Fatal("plaintext tidak boleh tersimpan di model")
	}
}
