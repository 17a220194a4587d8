// internals/features/academics/subjects/controller/subject_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "sekolahku_backend/internals/features/academics/courses/model"
	sDTO "sekolahku_backend/internals/features/academics/subjects/dto"
	sModel "sekolahku_backend/internals/features/academics/subjects/model"
	teacherModel "sekolahku_backend/internals/features/people/teachers/model"
	helper "sekolahku_backend/internals/helpers"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db, Validate: validator.New()}
}

func checkSubjectRefs(tx *gorm.DB, courseID, teacherID uuid.UUID) error {
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

// GET /subject
func (ctl *SubjectController) List(c *fiber.Ctx) error {
	var rows []sModel.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data subject")
	}
	out := make([]*sDTO.SubjectResponse, 0, len(rows))
	for i := range rows {
		out = append(out, sDTO.NewSubjectResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// GET /subject/:id
func (ctl *SubjectController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m sModel.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "subjects_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Subject tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data subject")
	}
	return helper.Success(c, "OK", sDTO.NewSubjectResponse(&m))
}

// POST /subject
func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var req sDTO.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := checkSubjectRefs(tx, req.CourseID, req.TeacherID); err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Subject berhasil dibuat", sDTO.NewSubjectResponse(m))
}

// PUT /subject/:id (full replace, referensi divalidasi ulang)
func (ctl *SubjectController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req sDTO.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m sModel.SubjectModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "subjects_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Subject tidak ditemukan")
			}
			return err
		}
		if err := checkSubjectRefs(tx, req.CourseID, req.TeacherID); err != nil {
			return err
		}
		req.ApplyToModel(&m)
		return tx.Save(&m).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.Success(c, "Subject diperbarui", sDTO.NewSubjectResponse(&m))
}

// DELETE /subject/:id — link class_subjects yang menunjuk subject ini dibiarkan.
func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m sModel.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "subjects_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Subject tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data subject")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(&sModel.SubjectModel{}, "subjects_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus subject")
	}
	return helper.Success(c, "Subject dihapus", fiber.Map{"id": m.SubjectsID})
}
