// internals/features/academics/courses/controller/course_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cDTO "sekolahku_backend/internals/features/academics/courses/dto"
	cModel "sekolahku_backend/internals/features/academics/courses/model"
	helper "sekolahku_backend/internals/helpers"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, Validate: validator.New()}
}

/* ===================== HANDLERS ===================== */

// GET /course
func (ctl *CourseController) List(c *fiber.Ctx) error {
	var rows []cModel.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data course")
	}
	out := make([]*cDTO.CourseResponse, 0, len(rows))
	for i := range rows {
		out = append(out, cDTO.NewCourseResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// GET /course/:id
func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m cModel.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "courses_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data course")
	}
	return helper.Success(c, "OK", cDTO.NewCourseResponse(&m))
}

// POST /course
func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req cDTO.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat course")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course berhasil dibuat", cDTO.NewCourseResponse(m))
}

// PUT /course/:id (full replace)
func (ctl *CourseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req cDTO.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m cModel.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "courses_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data course")
	}
	req.ApplyToModel(&m)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui course")
	}
	return helper.Success(c, "Course diperbarui", cDTO.NewCourseResponse(&m))
}

// DELETE /course/:id — enrollment/class/subject/assignment yang menunjuk course ini
// sengaja dibiarkan (tanpa cascade, perilaku terdokumentasi).
func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m cModel.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "courses_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data course")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(&cModel.CourseModel{}, "courses_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus course")
	}
	return helper.Success(c, "Course dihapus", fiber.Map{"id": m.CoursesID})
}
