// internals/features/people/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sCtrl "sekolahku_backend/internals/features/people/students/controller"
)

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	h := sCtrl.NewStudentController(db)

	g := r.Group("/student")
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
