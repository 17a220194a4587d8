// internals/features/academics/subjects/route/subject_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sCtrl "sekolahku_backend/internals/features/academics/subjects/controller"
)

func SubjectRoutes(r fiber.Router, db *gorm.DB) {
	h := sCtrl.NewSubjectController(db)

	g := r.Group("/subject")
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
