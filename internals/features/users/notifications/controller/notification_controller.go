// internals/features/users/notifications/controller/notification_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	nDTO "sekolahku_backend/internals/features/users/notifications/dto"
	nModel "sekolahku_backend/internals/features/users/notifications/model"
	userModel "sekolahku_backend/internals/features/users/users/model"
	helper "sekolahku_backend/internals/helpers"
)

type NotificationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db, Validate: validator.New()}
}

/* ===================== HANDLERS ===================== */

// GET /notification
func (ctl *NotificationController) List(c *fiber.Ctx) error {
	var rows []nModel.NotificationModel
	if err := ctl.DB.WithContext(c.UserContext()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data notifikasi")
	}
	out := make([]*nDTO.NotificationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, nDTO.NewNotificationResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// GET /notification/:id
func (ctl *NotificationController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m nModel.NotificationModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "notifications_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data notifikasi")
	}
	return helper.Success(c, "OK", nDTO.NewNotificationResponse(&m))
}

// POST /notification — user_id wajib menunjuk user yang ada.
func (ctl *NotificationController) Create(c *fiber.Ctx) error {
	var req nDTO.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var user userModel.UserModel
		if err := tx.First(&user, "users_id = ?", req.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "User ID tidak valid")
			}
			return err
		}
		return tx.Create(m).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Notifikasi berhasil dibuat", nDTO.NewNotificationResponse(m))
}

// PUT /notification/:id (full replace)
func (ctl *NotificationController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req nDTO.UpdateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m nModel.NotificationModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "notifications_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Notifikasi tidak ditemukan")
			}
			return err
		}
		var user userModel.UserModel
		if err := tx.First(&user, "users_id = ?", req.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "User ID tidak valid")
			}
			return err
		}
		req.ApplyToModel(&m)
		return tx.Save(&m).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.Success(c, "Notifikasi diperbarui", nDTO.NewNotificationResponse(&m))
}

// DELETE /notification/:id
func (ctl *NotificationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m nModel.NotificationModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "notifications_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data notifikasi")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(&nModel.NotificationModel{}, "notifications_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus notifikasi")
	}
	return helper.Success(c, "Notifikasi dihapus", fiber.Map{"id": m.NotificationsID})
}
