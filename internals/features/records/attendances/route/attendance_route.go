// internals/features/records/attendances/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aCtrl "sekolahku_backend/internals/features/records/attendances/controller"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	h := aCtrl.NewAttendanceController(db)
	g := r.Group("/attendance")
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
