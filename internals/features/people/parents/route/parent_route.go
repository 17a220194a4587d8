// internals/features/people/parents/route/parent_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pCtrl "sekolahku_backend/internals/features/people/parents/controller"
)

func ParentRoutes(r fiber.Router, db *gorm.DB) {
	h := pCtrl.NewParentController(db)

	g := r.Group("/parents")
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
