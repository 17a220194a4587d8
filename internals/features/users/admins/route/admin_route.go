// internals/features/users/admins/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aCtrl "sekolahku_backend/internals/features/users/admins/controller"
)

func AdminRoutes(r fiber.Router, db *gorm.DB) {
	h := aCtrl.NewAdminController(db)

	g := r.Group("/admin")
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
