// internals/features/records/enrollments/controller/enrollment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "sekolahku_backend/internals/features/academics/courses/model"
	studentModel "sekolahku_backend/internals/features/people/students/model"
	eDTO "sekolahku_backend/internals/features/records/enrollments/dto"
	eModel "sekolahku_backend/internals/features/records/enrollments/model"
	helper "sekolahku_backend/internals/helpers"
)

type EnrollmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db, Validate: validator.New()}
}

func checkEnrollmentRefs(tx *gorm.DB, studentID, courseID uuid.UUID) error {
	var student studentModel.StudentModel
	if err := tx.First(&student, "students_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Student ID tidak valid")
		}
		return err
	}
	var course courseModel.CourseModel
	if err := tx.First(&course, "courses_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Course ID tidak valid")
		}
		return err
	}
	return nil
}

/* ===================== HANDLERS ===================== */

// GET /enrollment
func (ctl *EnrollmentController) List(c *fiber.Ctx) error {
	var rows []eModel.EnrollmentModel
	if err := ctl.DB.WithContext(c.UserContext()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data enrollment")
	}
	out := make([]*eDTO.EnrollmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, eDTO.NewEnrollmentResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// GET /enrollment/:id
func (ctl *EnrollmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m eModel.EnrollmentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "enrollments_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Enrollment tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data enrollment")
	}
	return helper.Success(c, "OK", eDTO.NewEnrollmentResponse(&m))
}

// POST /enrollment — pendaftaran ganda diperbolehkan (tidak ada
// keunikan student+course).
func (ctl *EnrollmentController) Create(c *fiber.Ctx) error {
	var req eDTO.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := checkEnrollmentRefs(tx, req.StudentID, req.CourseID); err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Enrollment berhasil dibuat", eDTO.NewEnrollmentResponse(m))
}

// PUT /enrollment/:id (full replace, referensi divalidasi ulang)
func (ctl *EnrollmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req eDTO.UpdateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m eModel.EnrollmentModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "enrollments_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Enrollment tidak ditemukan")
			}
			return err
		}
		if err := checkEnrollmentRefs(tx, req.StudentID, req.CourseID); err != nil {
			return err
		}
		req.ApplyToModel(&m)
		return tx.Save(&m).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.Success(c, "Enrollment diperbarui", eDTO.NewEnrollmentResponse(&m))
}

// DELETE /enrollment/:id
func (ctl *EnrollmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m eModel.EnrollmentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "enrollments_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Enrollment tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data enrollment")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(&eModel.EnrollmentModel{}, "enrollments_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus enrollment")
	}
	return helper.Success(c, "Enrollment dihapus", fiber.Map{"id": m.EnrollmentsID})
}
