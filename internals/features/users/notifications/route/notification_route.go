// internals/features/users/notifications/route/notification_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	nCtrl "sekolahku_backend/internals/features/users/notifications/controller"
)

func NotificationRoutes(r fiber.Router, db *gorm.DB) {
	h := nCtrl.NewNotificationController(db)

	g := r.Group("/notification")
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
