package authorRoutes

import (
	"coursehub/controllers/authorController"
	"coursehub/middleware"
	"coursehub/models"
	authorValidator "coursehub/validators/author"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthorRoutes sets up author listing and administration
func SetupAuthorRoutes(app *fiber.App, h *authorController.AuthorController) {
	authorGroup := app.Group("/authors")
	authorGroup.Get("/", h.ListAuthors)
	authorGroup.Get("/popular", h.PopularAuthors)
	authorGroup.Post("/",
		middleware.JWTMiddleware,
		middleware.RequirePermission(models.PermAddAuthor),
		authorValidator.CreateAuthor(),
		h.CreateAuthor)
}
