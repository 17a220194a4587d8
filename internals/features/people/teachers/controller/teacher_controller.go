// internals/features/people/teachers/controller/teacher_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	tDTO "sekolahku_backend/internals/features/people/teachers/dto"
	tModel "sekolahku_backend/internals/features/people/teachers/model"
	userModel "sekolahku_backend/internals/features/users/users/model"
	helper "sekolahku_backend/internals/helpers"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db, Validate: validator.New()}
}

// user harus ada, ber-role teacher, dan belum punya profil teacher lain.
// Email teacher juga dicek unik sebelum insert.
func checkTeacherRefs(tx *gorm.DB, userID uuid.UUID, email string, excludeTeacherID *uuid.UUID) error {
	var user userModel.UserModel
	if err := tx.First(&user, "users_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "User ID tidak valid")
		}
		return err
	}
	if user.Role != userModel.UserRoleTeacher {
		return fiber.NewError(fiber.StatusBadRequest, "User bukan ber-role teacher")
	}

	profileQ := tx.Model(&tModel.TeacherModel{}).Where("user_id = ?", userID)
	emailQ := tx.Model(&tModel.TeacherModel{}).Where("email = ?", email)
	if excludeTeacherID != nil {
		profileQ = profileQ.Where("teachers_id <> ?", *excludeTeacherID)
		emailQ = emailQ.Where("teachers_id <> ?", *excludeTeacherID)
	}

	var count int64
	if err := profileQ.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "User sudah memiliki profil teacher")
	}
	if err := emailQ.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Teacher dengan email ini sudah ada")
	}
	return nil
}

/* ===================== HANDLERS ===================== */

// GET /teacher
func (ctl *TeacherController) List(c *fiber.Ctx) error {
	var rows []tModel.TeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data teacher")
	}
	out := make([]*tDTO.TeacherResponse, 0, len(rows))
	for i := range rows {
		out = append(out, tDTO.NewTeacherResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// GET /teacher/:id
func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m tModel.TeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "teachers_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Teacher tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data teacher")
	}
	return helper.Success(c, "OK", tDTO.NewTeacherResponse(&m))
}

// POST /teacher
func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req tDTO.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := checkTeacherRefs(tx, req.UserID, req.Email, nil); err != nil {
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusBadRequest, "Teacher dengan email ini sudah ada")
			}
			return err
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Teacher berhasil dibuat", tDTO.NewTeacherResponse(m))
}

// PUT /teacher/:id (full replace, referensi divalidasi ulang)
func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req tDTO.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m tModel.TeacherModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "teachers_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Teacher tidak ditemukan")
			}
			return err
		}
		if err := checkTeacherRefs(tx, req.UserID, req.Email, &m.TeachersID); err != nil {
			return err
		}
		req.ApplyToModel(&m)
		if err := tx.Save(&m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusBadRequest, "Teacher dengan email ini sudah ada")
			}
			return err
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.Success(c, "Teacher diperbarui", tDTO.NewTeacherResponse(&m))
}

// DELETE /teacher/:id — class/subject/assignment milik teacher dibiarkan (tanpa cascade).
func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m tModel.TeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "teachers_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Teacher tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data teacher")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(&tModel.TeacherModel{}, "teachers_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus teacher")
	}
	return helper.Success(c, "Teacher dihapus", fiber.Map{"id": m.TeachersID})
}
