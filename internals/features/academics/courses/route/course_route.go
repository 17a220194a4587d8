// internals/features/academics/courses/route/course_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cCtrl "sekolahku_backend/internals/features/academics/courses/controller"
)

func CourseRoutes(r fiber.Router, db *gorm.DB) {
	h := cCtrl.NewCourseController(db)

	g := r.Group("/course")
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
