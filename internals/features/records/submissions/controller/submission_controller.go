// internals/features/records/submissions/controller/submission_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "sekolahku_backend/internals/features/people/students/model"
	assignmentModel "sekolahku_backend/internals/features/records/assignments/model"
	sDTO "sekolahku_backend/internals/features/records/submissions/dto"
	sModel "sekolahku_backend/internals/features/records/submissions/model"
	helper "sekolahku_backend/internals/helpers"
)

type SubmissionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubmissionController(db *gorm.DB) *SubmissionController {
	return &SubmissionController{DB: db, Validate: validator.New()}
}

func checkSubmissionRefs(tx *gorm.DB, assignmentID, studentID uuid.UUID) error {
	var assignment assignmentModel.AssignmentModel
	if err := tx.First(&assignment, "assignments_id = ?", assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Assignment ID tidak valid")
		}
		return err
	}
	var student studentModel.StudentModel
	if err := tx.First(&student, "students_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Student ID tidak valid")
		}
		return err
	}
	return nil
}

/* ===================== HANDLERS ===================== */

// GET /submission
func (ctl *SubmissionController) List(c *fiber.Ctx) error {
	var rows []sModel.SubmissionModel
	if err := ctl.DB.WithContext(c.UserContext()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data submission")
	}
	out := make([]*sDTO.SubmissionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, sDTO.NewSubmissionResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// GET /submission/:id
func (ctl *SubmissionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m sModel.SubmissionModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "submissions_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Submission tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data submission")
	}
	return helper.Success(c, "OK", sDTO.NewSubmissionResponse(&m))
}

// POST /submission — satu student boleh submit berkali-kali untuk
// assignment yang sama.
func (ctl *SubmissionController) Create(c *fiber.Ctx) error {
	var req sDTO.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := checkSubmissionRefs(tx, req.AssignmentID, req.StudentID); err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Submission berhasil dibuat", sDTO.NewSubmissionResponse(m))
}

// PUT /submission/:id (full replace, referensi divalidasi ulang)
func (ctl *SubmissionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req sDTO.UpdateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m sModel.SubmissionModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "submissions_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Submission tidak ditemukan")
			}
			return err
		}
		if err := checkSubmissionRefs(tx, req.AssignmentID, req.StudentID); err != nil {
			return err
		}
		req.ApplyToModel(&m)
		return tx.Save(&m).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.Success(c, "Submission diperbarui", sDTO.NewSubmissionResponse(&m))
}

// DELETE /submission/:id
func (ctl *SubmissionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m sModel.SubmissionModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "submissions_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Submission tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data submission")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(&sModel.SubmissionModel{}, "submissions_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus submission")
	}
	return helper.Success(c, "Submission dihapus", fiber.Map{"id": m.SubmissionsID})
}
