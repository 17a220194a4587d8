// internals/features/records/submissions/route/submission_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sCtrl "sekolahku_backend/internals/features/records/submissions/controller"
)

func SubmissionRoutes(r fiber.Router, db *gorm.DB) {
	h := sCtrl.NewSubmissionController(db)
	g := r.Group("/submission")
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
