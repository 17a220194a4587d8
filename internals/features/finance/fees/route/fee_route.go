// internals/features/finance/fees/route/fee_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fCtrl "sekolahku_backend/internals/features/finance/fees/controller"
)

func FeeRoutes(r fiber.Router, db *gorm.DB) {
	h := fCtrl.NewFeeController(db)
	g := r.Group("/fee")
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
