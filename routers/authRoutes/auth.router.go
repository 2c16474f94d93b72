package authRoutes

import (
	controllers "courseverse/controllers/auth"
	validators "courseverse/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up authentication routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", validators.SignupValidator(), controllers.Signup)
	authGroup.Post("/login", validators.LoginValidator(), controllers.Login)
}
