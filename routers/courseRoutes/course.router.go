package courseRoutes

import (
	"coursehub/controllers/courseController"
	"coursehub/middleware"
	"coursehub/models"
	courseValidator "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up catalog browsing and course administration
func SetupCourseRoutes(app *fiber.App, h *courseController.CourseController) {
	courseGroup := app.Group("/courses")

	// Public catalog
	courseGroup.Get("/", courseValidator.CourseList(), h.ListByCategory)
	courseGroup.Get("/top-of-month", h.TopOfMonth)
	courseGroup.Get("/popular", h.Popular)

	// Author dashboard
	courseGroup.Get("/mine", middleware.JWTMiddleware, h.ListMine)

	// Super-admin dashboard
	courseGroup.Get("/all",
		middleware.JWTMiddleware,
		middleware.RequirePermission(models.PermAddCourse, models.PermAddAuthor, models.PermAddCategory),
		h.ListAll)

	courseGroup.Get("/:id", h.GetCourse)

	// Administration
	courseGroup.Post("/",
		middleware.JWTMiddleware,
		middleware.RequirePermission(models.PermAddCourse),
		courseValidator.CreateCourse(),
		h.CreateCourse)
	courseGroup.Put("/:id",
		middleware.JWTMiddleware,
		middleware.RequirePermission(models.PermEditCourse),
		courseValidator.UpdateCourse(),
		h.UpdateCourse)
}
