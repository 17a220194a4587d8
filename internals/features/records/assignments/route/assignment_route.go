// internals/features/records/assignments/route/assignment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aCtrl "sekolahku_backend/internals/features/records/assignments/controller"
)

func AssignmentRoutes(r fiber.Router, db *gorm.DB) {
	h := aCtrl.NewAssignmentController(db)
	g := r.Group("/assignment")
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
