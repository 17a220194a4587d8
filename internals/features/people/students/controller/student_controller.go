// internals/features/people/students/controller/student_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	sDTO "sekolahku_backend/internals/features/people/students/dto"
	sModel "sekolahku_backend/internals/features/people/students/model"
	userModel "sekolahku_backend/internals/features/users/users/model"
	helper "sekolahku_backend/internals/helpers"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validate: validator.New()}
}

// user harus ada, ber-role student, dan belum punya profil student lain.
func checkStudentUser(tx *gorm.DB, userID uuid.UUID, excludeStudentID *uuid.UUID) error {
	var user userModel.UserModel
	if err := tx.First(&user, "users_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "User ID tidak valid")
		}
		return err
	}
	if user.Role != userModel.UserRoleStudent {
		return fiber.NewError(fiber.StatusBadRequest, "User bukan ber-role student")
	}

	q := tx.Model(&sModel.StudentModel{}).Where("user_id = ?", userID)
	if excludeStudentID != nil {
		q = q.Where("students_id <> ?", *excludeStudentID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "User sudah memiliki profil student")
	}
	return nil
}

/* ===================== HANDLERS ===================== */

// GET /student
func (ctl *StudentController) List(c *fiber.Ctx) error {
	var rows []sModel.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data student")
	}
	out := make([]*sDTO.StudentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, sDTO.NewStudentResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// GET /student/:id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m sModel.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "students_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data student")
	}
	return helper.Success(c, "OK", sDTO.NewStudentResponse(&m))
}

// POST /student
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req sDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := checkStudentUser(tx, req.UserID, nil); err != nil {
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusBadRequest, "Email sudah digunakan atau user sudah punya profil student")
			}
			return err
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student berhasil dibuat", sDTO.NewStudentResponse(m))
}

// PUT /student/:id (full replace, user_id divalidasi ulang)
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req sDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m sModel.StudentModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "students_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Student tidak ditemukan")
			}
			return err
		}
		if err := checkStudentUser(tx, req.UserID, &m.StudentsID); err != nil {
			return err
		}
		req.ApplyToModel(&m)
		if err := tx.Save(&m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusBadRequest, "Email sudah digunakan")
			}
			return err
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.Success(c, "Student diperbarui", sDTO.NewStudentResponse(&m))
}

// DELETE /student/:id — enrollment/attendance/fee/submission milik student dibiarkan (tanpa cascade).
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m sModel.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "students_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data student")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(&sModel.StudentModel{}, "students_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus student")
	}
	return helper.Success(c, "Student dihapus", fiber.Map{"id": m.StudentsID})
}
