// internals/features/users/users/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	adminModel "sekolahku_backend/internals/features/users/admins/model"
	uDTO "sekolahku_backend/internals/features/users/users/dto"
	uModel "sekolahku_backend/internals/features/users/users/model"
	helper "sekolahku_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

/* ===================== HANDLERS ===================== */

// GET /user — opsional ?role=student|teacher|parent
func (ctl *UserController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext())
	if role := strings.ToLower(strings.TrimSpace(c.Query("role"))); role != "" {
		if !constants.IsValidRole(role) {
			return helper.Error(c, fiber.StatusBadRequest, "Role tidak dikenal")
		}
		q = q.Where("role = ?", role)
	}

	var rows []uModel.UserModel
	if err := q.Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	out := make([]*uDTO.UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, uDTO.NewUserResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// GET /user/:id
func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m uModel.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "users_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	return helper.Success(c, "OK", uDTO.NewUserResponse(&m))
}

// POST /user — admin_id wajib menunjuk admin yang ada.
func (ctl *UserController) Create(c *fiber.Ctx) error {
	var req uDTO.CreateUserRequest
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
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var admin adminModel.AdminModel
		if err := tx.First(&admin, "admins_id = ?", req.AdminID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "Admin ID tidak valid")
			}
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusBadRequest, "Username atau email sudah digunakan")
			}
			return err
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User berhasil dibuat", uDTO.NewUserResponse(m))
}

// PUT /user/:id (full replace, admin_id divalidasi ulang)
func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req uDTO.UpdateUserRequest
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

	var m uModel.UserModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "users_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
			}
			return err
		}
		var admin adminModel.AdminModel
		if err := tx.First(&admin, "admins_id = ?", req.AdminID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "Admin ID tidak valid")
			}
			return err
		}
		req.ApplyToModel(&m, hashed)
		if err := tx.Save(&m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusBadRequest, "Username atau email sudah digunakan")
			}
			return err
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.Success(c, "User diperbarui", uDTO.NewUserResponse(&m))
}

// DELETE /user/:id — profil student/teacher/parent milik user ini dibiarkan (tanpa cascade).
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m uModel.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "users_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(&uModel.UserModel{}, "users_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}
	return helper.Success(c, "User dihapus", fiber.Map{"id": m.UsersID})
}
