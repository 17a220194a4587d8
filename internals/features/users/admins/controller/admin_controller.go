// internals/features/users/admins/controller/admin_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	aDTO "sekolahku_backend/internals/features/users/admins/dto"
	aModel "sekolahku_backend/internals/features/users/admins/model"
	helper "sekolahku_backend/internals/helpers"
)

type AdminController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db, Validate: validator.New()}
}

/* ===================== HANDLERS ===================== */

// GET /admin
func (ctl *AdminController) List(c *fiber.Ctx) error {
	var rows []aModel.AdminModel
	if err := ctl.DB.WithContext(c.UserContext()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data admin")
	}
	out := make([]*aDTO.AdminResponse, 0, len(rows))
	for i := range rows {
		out = append(out, aDTO.NewAdminResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// GET /admin/:id
func (ctl *AdminController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m aModel.AdminModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "admins_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Admin tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data admin")
	}
	return helper.Success(c, "OK", aDTO.NewAdminResponse(&m))
}

// POST /admin
func (ctl *AdminController) Create(c *fiber.Ctx) error {
	var req aDTO.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := helper.HashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	m := req.ToModel(hashed)
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Email sudah digunakan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat admin")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Admin berhasil dibuat", aDTO.NewAdminResponse(m))
}

// PUT /admin/:id (full replace)
func (ctl *AdminController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req aDTO.UpdateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := helper.HashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	var m aModel.AdminModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "admins_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Admin tidak ditemukan")
			}
			return err
		}
		req.ApplyToModel(&m, hashed)
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
	return helper.Success(c, "Admin diperbarui", aDTO.NewAdminResponse(&m))
}

// DELETE /admin/:id — tanpa cascade: user milik admin ini dibiarkan.
func (ctl *AdminController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m aModel.AdminModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "admins_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Admin tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data admin")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(&aModel.AdminModel{}, "admins_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus admin")
	}
	return helper.Success(c, "Admin dihapus", fiber.Map{"id": m.AdminsID})
}
