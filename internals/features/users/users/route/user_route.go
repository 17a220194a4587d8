// internals/features/users/users/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	uCtrl "sekolahku_backend/internals/features/users/users/controller"
)

func UserRoutes(r fiber.Router, db *gorm.DB) {
	h := uCtrl.NewUserController(db)

	g := r.Group("/user")
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
