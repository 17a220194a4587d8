// internals/features/people/parents/controller/parent_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	pDTO "sekolahku_backend/internals/features/people/parents/dto"
	pModel "sekolahku_backend/internals/features/people/parents/model"
	studentModel "sekolahku_backend/internals/features/people/students/model"
	userModel "sekolahku_backend/internals/features/users/users/model"
	helper "sekolahku_backend/internals/helpers"
)

type ParentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewParentController(db *gorm.DB) *ParentController {
	return &ParentController{DB: db, Validate: validator.New()}
}

// user ber-role parent + student ada + belum ada parent lain untuk user/student tsb.
func checkParentRefs(tx *gorm.DB, userID, studentID uuid.UUID, excludeParentID *uuid.UUID) error {
	var user userModel.UserModel
	if err := tx.First(&user, "users_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "User ID tidak valid. User harus ber-role parent")
		}
		return err
	}
	if user.Role != userModel.UserRoleParent {
		return fiber.NewError(fiber.StatusBadRequest, "User ID tidak valid. User harus ber-role parent")
	}

	var student studentModel.StudentModel
	if err := tx.First(&student, "students_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Student ID tidak valid")
		}
		return err
	}

	userQ := tx.Model(&pModel.ParentModel{}).Where("user_id = ?", userID)
	studentQ := tx.Model(&pModel.ParentModel{}).Where("student_id = ?", studentID)
	if excludeParentID != nil {
		userQ = userQ.Where("parents_id <> ?", *excludeParentID)
		studentQ = studentQ.Where("parents_id <> ?", *excludeParentID)
	}

	var count int64
	if err := userQ.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Parent untuk user ini sudah ada")
	}
	if err := studentQ.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Parent untuk student ini sudah ada")
	}
	return nil
}

/* ===================== HANDLERS ===================== */

// GET /parents
func (ctl *ParentController) List(c *fiber.Ctx) error {
	var rows []pModel.ParentModel
	if err := ctl.DB.WithContext(c.UserContext()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data parent")
	}
	out := make([]*pDTO.ParentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, pDTO.NewParentResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// GET /parents/:id
func (ctl *ParentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m pModel.ParentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "parents_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Parent tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data parent")
	}
	return helper.Success(c, "OK", pDTO.NewParentResponse(&m))
}

// POST /parents
func (ctl *ParentController) Create(c *fiber.Ctx) error {
	var req pDTO.CreateParentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := checkParentRefs(tx, req.UserID, req.StudentID, nil); err != nil {
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusBadRequest, "Parent untuk user/student ini sudah ada")
			}
			return err
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Parent berhasil dibuat", pDTO.NewParentResponse(m))
}

// PUT /parents/:id (full replace, referensi divalidasi ulang)
func (ctl *ParentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req pDTO.UpdateParentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m pModel.ParentModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "parents_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Parent tidak ditemukan")
			}
			return err
		}
		if err := checkParentRefs(tx, req.UserID, req.StudentID, &m.ParentsID); err != nil {
			return err
		}
		req.ApplyToModel(&m)
		if err := tx.Save(&m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusBadRequest, "Parent untuk user/student ini sudah ada")
			}
			return err
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.Success(c, "Parent diperbarui", pDTO.NewParentResponse(&m))
}

// DELETE /parents/:id
func (ctl *ParentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m pModel.ParentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "parents_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Parent tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data parent")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(&pModel.ParentModel{}, "parents_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus parent")
	}
	return helper.Success(c, "Parent dihapus", fiber.Map{"id": m.ParentsID})
}
