// internals/features/records/attendances/controller/attendance_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "sekolahku_backend/internals/features/academics/classes/model"
	studentModel "sekolahku_backend/internals/features/people/students/model"
	aDTO "sekolahku_backend/internals/features/records/attendances/dto"
	aModel "sekolahku_backend/internals/features/records/attendances/model"
	helper "sekolahku_backend/internals/helpers"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validate: validator.New()}
}

func checkAttendanceRefs(tx *gorm.DB, studentID, classID uuid.UUID) error {
	var student studentModel.StudentModel
	if err := tx.First(&student, "students_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Student ID tidak valid")
		}
		return err
	}
	var class classModel.ClassModel
	if err := tx.First(&class, "classes_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Class ID tidak valid")
		}
		return err
	}
	return nil
}

/* ===================== HANDLERS ===================== */

// GET /attendance
func (ctl *AttendanceController) List(c *fiber.Ctx) error {
	var rows []aModel.AttendanceModel
	if err := ctl.DB.WithContext(c.UserContext()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data attendance")
	}
	out := make([]*aDTO.AttendanceResponse, 0, len(rows))
	for i := range rows {
		out = append(out, aDTO.NewAttendanceResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// GET /attendance/:id
func (ctl *AttendanceController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m aModel.AttendanceModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Attendance tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data attendance")
	}
	return helper.Success(c, "OK", aDTO.NewAttendanceResponse(&m))
}

// POST /attendance — boleh lebih dari satu catatan untuk student+tanggal
// yang sama.
func (ctl *AttendanceController) Create(c *fiber.Ctx) error {
	var req aDTO.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := checkAttendanceRefs(tx, req.StudentID, req.ClassID); err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Attendance berhasil dibuat", aDTO.NewAttendanceResponse(m))
}

// PUT /attendance/:id (full replace, referensi divalidasi ulang)
func (ctl *AttendanceController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req aDTO.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m aModel.AttendanceModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "attendance_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Attendance tidak ditemukan")
			}
			return err
		}
		if err := checkAttendanceRefs(tx, req.StudentID, req.ClassID); err != nil {
			return err
		}
		req.ApplyToModel(&m)
		return tx.Save(&m).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.Success(c, "Attendance diperbarui", aDTO.NewAttendanceResponse(&m))
}

// DELETE /attendance/:id
func (ctl *AttendanceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m aModel.AttendanceModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Attendance tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data attendance")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(&aModel.AttendanceModel{}, "attendance_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus attendance")
	}
	return helper.Success(c, "Attendance dihapus", fiber.Map{"id": m.AttendanceID})
}
