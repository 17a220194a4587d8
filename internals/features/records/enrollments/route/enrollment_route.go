// internals/features/records/enrollments/route/enrollment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eCtrl "sekolahku_backend/internals/features/records/enrollments/controller"
)

func EnrollmentRoutes(r fiber.Router, db *gorm.DB) {
	h := eCtrl.NewEnrollmentController(db)
	g := r.Group("/enrollment")
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
