package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	aModel "sekolahku_backend/internals/features/records/assignments/model"
)

func TestCreateAssignmentRequestValidation(t *testing.T) {
	v := validator.New()

	req := CreateAssignmentRequest{
		Title:     "Tugas Aljabar",
		DueDate:   "2026-09-15",
		CourseID:  uuid.New(),
		TeacherID: uuid.New(),
	}
	if err := v.Struct(&req); err != nil {
		t.Fatalf("payload valid ditolak: %v", err)
	}

	req.Title = "T"
	if err := v.Struct(&req); err == nil {
		t.Fatal("title terlalu pendek seharusnya ditolak")
	}

	req.Title = "Tugas Aljabar"
	req.DueDate = "15-09-2026"
	if err := v.Struct(&req); err == nil {
		t.Fatal("format due_date salah seharusnya ditolak")
	}
}

func TestNewAssignmentResponseCarriesCreatedAt(t *testing.T) {
	now := time.Now()
	resp := NewAssignmentResponse(&aModel.AssignmentModel{
		AssignmentsID: uuid.New(),
		Title:         "Tugas Aljabar",
		DueDate:       now,
		CourseID:      uuid.New(),
		TeacherID:     uuid.New(),
		CreatedAt:     now,
	})
	if resp.CreatedAt.IsZero() {
		t.Fatal("created_at tidak ikut di response")
	}
	if got := resp.DueDate; got != now.Format(dateLayout) {
		t.Fatalf("DueDate = %s", got)
	}
}
