package reviewRoutes

import (
	"coursehub/controllers/reviewController"
	"coursehub/middleware"
	reviewValidator "coursehub/validators/review"

	"github.com/gofiber/fiber/v2"
)

// SetupReviewRoutes sets up per-course review routes
func SetupReviewRoutes(app *fiber.App, h *reviewController.ReviewController) {
	reviewGroup := app.Group("/courses/:id/reviews")
	reviewGroup.Get("/", reviewValidator.ReviewList(), h.ListReviews)
	reviewGroup.Post("/", middleware.JWTMiddleware, reviewValidator.SubmitReview(), h.SubmitReview)
}
