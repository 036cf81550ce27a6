package requestRoutes

import (
	"coursehub/controllers/requestController"
	"coursehub/middleware"
	"coursehub/models"
	requestValidator "coursehub/validators/request"

	"github.com/gofiber/fiber/v2"
)

// SetupRequestRoutes sets up course-request routes
func SetupRequestRoutes(app *fiber.App, h *requestController.RequestController) {
	requestGroup := app.Group("/requests")
	requestGroup.Post("/", middleware.JWTMiddleware, requestValidator.AddRequest(), h.AddRequest)
	requestGroup.Get("/",
		middleware.JWTMiddleware,
		middleware.RequirePermission(models.PermAddCourse, models.PermAddAuthor, models.PermAddCategory),
		h.ListRequests)
}
