// internals/features/academics/classes/route/class_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cCtrl "sekolahku_backend/internals/features/academics/classes/controller"
)

func ClassRoutes(r fiber.Router, db *gorm.DB) {
	h := cCtrl.NewClassController(db)

	g := r.Group("/class")
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
