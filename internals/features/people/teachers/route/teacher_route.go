// internals/features/people/teachers/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tCtrl "sekolahku_backend/internals/features/people/teachers/controller"
)

func TeacherRoutes(r fiber.Router, db *gorm.DB) {
	h := tCtrl.NewTeacherController(db)

	g := r.Group("/teacher")
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
