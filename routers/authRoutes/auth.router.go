package authRoutes

import (
	"coursehub/controllers/authController"
	"coursehub/middleware"
	authValidator "coursehub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up signup/login and profile routes
func SetupAuthRoutes(app *fiber.App, h *authController.AuthController) {
	authGroup := app.Group("/auth")
	authGroup.Post("/signup", authValidator.Signup(), h.Signup)
	authGroup.Post("/login", authValidator.Login(), h.Login)
	authGroup.Post("/google", authValidator.GoogleLogin(), h.GoogleLogin)

	profileGroup := app.Group("/profile")
	profileGroup.Get("/", middleware.JWTMiddleware, h.GetProfile)
	profileGroup.Put("/", middleware.JWTMiddleware, authValidator.UpdateProfile(), h.UpdateProfile)
}
