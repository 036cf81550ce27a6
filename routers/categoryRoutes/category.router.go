package categoryRoutes

import (
	"coursehub/controllers/categoryController"
	"coursehub/middleware"
	"coursehub/models"
	categoryValidator "coursehub/validators/category"

	"github.com/gofiber/fiber/v2"
)

// SetupCategoryRoutes sets up category listing and administration
func SetupCategoryRoutes(app *fiber.App, h *categoryController.CategoryController) {
	categoryGroup := app.Group("/categories")
	categoryGroup.Get("/", h.ListCategories)
	categoryGroup.Post("/",
		middleware.JWTMiddleware,
		middleware.RequirePermission(models.PermAddCategory),
		categoryValidator.CreateCategory(),
		h.CreateCategory)
}
