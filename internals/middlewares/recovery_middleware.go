package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic dari handler CRUD manapun dan
// mengubahnya jadi response 500, supaya satu request buruk tidak
// mematikan server.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true, // stack trace dicetak ke log server
	})
}
