// internals/features/finance/fees/controller/fee_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	fDTO "sekolahku_backend/internals/features/finance/fees/dto"
	fModel "sekolahku_backend/internals/features/finance/fees/model"
	studentModel "sekolahku_backend/internals/features/people/students/model"
	helper "sekolahku_backend/internals/helpers"
)

type FeeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFeeController(db *gorm.DB) *FeeController {
	return &FeeController{DB: db, Validate: validator.New()}
}

func checkFeeRefs(tx *gorm.DB, studentID uuid.UUID) error {
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

// GET /fee
func (ctl *FeeController) List(c *fiber.Ctx) error {
	var rows []fModel.FeeModel
	if err := ctl.DB.WithContext(c.UserContext()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data fee")
	}
	out := make([]*fDTO.FeeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, fDTO.NewFeeResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// GET /fee/:id
func (ctl *FeeController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m fModel.FeeModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "fees_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Fee tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data fee")
	}
	return helper.Success(c, "OK", fDTO.NewFeeResponse(&m))
}

// POST /fee
func (ctl *FeeController) Create(c *fiber.Ctx) error {
	var req fDTO.CreateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := checkFeeRefs(tx, req.StudentID); err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Fee berhasil dibuat", fDTO.NewFeeResponse(m))
}

// PUT /fee/:id (full replace, referensi divalidasi ulang)
func (ctl *FeeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req fDTO.UpdateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m fModel.FeeModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "fees_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Fee tidak ditemukan")
			}
			return err
		}
		if err := checkFeeRefs(tx, req.StudentID); err != nil {
			return err
		}
		req.ApplyToModel(&m)
		return tx.Save(&m).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.Success(c, "Fee diperbarui", fDTO.NewFeeResponse(&m))
}

// DELETE /fee/:id
func (ctl *FeeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m fModel.FeeModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "fees_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Fee tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data fee")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(&fModel.FeeModel{}, "fees_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus fee")
	}
	return helper.Success(c, "Fee dihapus", fiber.Map{"id": m.FeesID})
}
