// internals/features/records/assignments/controller/assignment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "sekolahku_backend/internals/features/academics/courses/model"
	teacherModel "sekolahku_backend/internals/features/people/teachers/model"
	aDTO "sekolahku_backend/internals/features/records/assignments/dto"
	aModel "sekolahku_backend/internals/features/records/assignments/model"
	helper "sekolahku_backend/internals/helpers"
)

type AssignmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{DB: db, Validate: validator.New()}
}

func checkAssignmentRefs(tx *gorm.DB, courseID, teacherID uuid.UUID) error {
	var course courseModel.CourseModel
	if err := tx.First(&course, "courses_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Course ID tidak valid")
		}
		return err
	}
	var teacher teacherModel.TeacherModel
	if err := tx.First(&teacher, "teachers_id = ?", teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Teacher ID tidak valid")
		}
		return err
	}
	return nil
}

/* ===================== HANDLERS ===================== */

// GET /assignment
func (ctl *AssignmentController) List(c *fiber.Ctx) error {
	var rows []aModel.AssignmentModel
	if err := ctl.DB.WithContext(c.UserContext()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data assignment")
	}
	out := make([]*aDTO.AssignmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, aDTO.NewAssignmentResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// GET /assignment/:id
func (ctl *AssignmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m aModel.AssignmentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "assignments_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data assignment")
	}
	return helper.Success(c, "OK", aDTO.NewAssignmentResponse(&m))
}

// POST /assignment — due_date di masa lalu tetap diterima.
func (ctl *AssignmentController) Create(c *fiber.Ctx) error {
	var req aDTO.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := checkAssignmentRefs(tx, req.CourseID, req.TeacherID); err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Assignment berhasil dibuat", aDTO.NewAssignmentResponse(m))
}

// PUT /assignment/:id (full replace, referensi divalidasi ulang)
func (ctl *AssignmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req aDTO.UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m aModel.AssignmentModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "assignments_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Assignment tidak ditemukan")
			}
			return err
		}
		if err := checkAssignmentRefs(tx, req.CourseID, req.TeacherID); err != nil {
			return err
		}
		req.ApplyToModel(&m)
		return tx.Save(&m).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.Success(c, "Assignment diperbarui", aDTO.NewAssignmentResponse(&m))
}

// DELETE /assignment/:id — submission yang menunjuk assignment ini
// dibiarkan (tidak ada cascade).
func (ctl *AssignmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m aModel.AssignmentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "assignments_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data assignment")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(&aModel.AssignmentModel{}, "assignments_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus assignment")
	}
	return helper.Success(c, "Assignment dihapus", fiber.Map{"id": m.AssignmentsID})
}
