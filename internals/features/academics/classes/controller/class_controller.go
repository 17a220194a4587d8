// internals/features/academics/classes/controller/class_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cDTO "sekolahku_backend/internals/features/academics/classes/dto"
	cModel "sekolahku_backend/internals/features/academics/classes/model"
	courseModel "sekolahku_backend/internals/features/academics/courses/model"
	subjectModel "sekolahku_backend/internals/features/academics/subjects/model"
	teacherModel "sekolahku_backend/internals/features/people/teachers/model"
	helper "sekolahku_backend/internals/helpers"
)

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db, Validate: validator.New()}
}

func checkClassRefs(tx *gorm.DB, teacherID, courseID uuid.UUID, subjectIDs []uuid.UUID) error {
	var teacher teacherModel.TeacherModel
	if err := tx.First(&teacher, "teachers_id = ?", teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Teacher ID tidak valid")
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
	for _, sid := range subjectIDs {
		var subject subjectModel.SubjectModel
		if err := tx.First(&subject, "subjects_id = ?", sid).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "Subject ID "+sid.String()+" tidak valid")
			}
			return err
		}
	}
	return nil
}

// ganti seluruh isi link class_subjects untuk satu class
func replaceClassSubjects(tx *gorm.DB, classID uuid.UUID, subjectIDs []uuid.UUID) error {
	if err := tx.Delete(&cModel.ClassSubjectModel{}, "class_id = ?", classID).Error; err != nil {
		return err
	}
	for _, sid := range subjectIDs {
		link := cModel.ClassSubjectModel{ClassID: classID, SubjectID: sid}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

func (ctl *ClassController) subjectIDsOf(classID uuid.UUID) ([]uuid.UUID, error) {
	var links []cModel.ClassSubjectModel
	if err := ctl.DB.Find(&links, "class_id = ?", classID).Error; err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.SubjectID)
	}
	return ids, nil
}

/* ===================== HANDLERS ===================== */

// GET /class
func (ctl *ClassController) List(c *fiber.Ctx) error {
	var rows []cModel.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data class")
	}
	out := make([]*cDTO.ClassResponse, 0, len(rows))
	for i := range rows {
		ids, err := ctl.subjectIDsOf(rows[i].ClassesID)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data class")
		}
		out = append(out, cDTO.NewClassResponse(&rows[i], ids))
	}
	return helper.Success(c, "OK", out)
}

// GET /class/:id
func (ctl *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m cModel.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "classes_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Class tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data class")
	}
	ids, err := ctl.subjectIDsOf(m.ClassesID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data class")
	}
	return helper.Success(c, "OK", cDTO.NewClassResponse(&m, ids))
}

// POST /class
func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var req cDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := checkClassRefs(tx, req.TeacherID, req.CourseID, req.SubjectIDs); err != nil {
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return replaceClassSubjects(tx, m.ClassesID, req.SubjectIDs)
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Class berhasil dibuat", cDTO.NewClassResponse(m, req.SubjectIDs))
}

// PUT /class/:id (full replace, termasuk link subject)
func (ctl *ClassController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req cDTO.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m cModel.ClassModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "classes_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Class tidak ditemukan")
			}
			return err
		}
		if err := checkClassRefs(tx, req.TeacherID, req.CourseID, req.SubjectIDs); err != nil {
			return err
		}
		req.ApplyToModel(&m)
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		return replaceClassSubjects(tx, m.ClassesID, req.SubjectIDs)
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.Success(c, "Class diperbarui", cDTO.NewClassResponse(&m, req.SubjectIDs))
}

// DELETE /class/:id — link subject ikut dibersihkan; attendance yang
// menunjuk class ini dibiarkan (tanpa cascade antar entitas).
func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m cModel.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "classes_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Class tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data class")
	}
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&cModel.ClassSubjectModel{}, "class_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&cModel.ClassModel{}, "classes_id = ?", id).Error
	})
	if txErr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus class")
	}
	return helper.Success(c, "Class dihapus", fiber.Map{"id": m.ClassesID})
}
