package reviewController

import (
	"errors"

	"coursehub/middleware"
	"coursehub/models"
	"coursehub/services"
	reviewValidator "coursehub/validators/review"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReviewController struct {
	reviews *services.ReviewService
	users   *services.UserService
}

func New(reviews *services.ReviewService, users *services.UserService) *ReviewController {
	return &ReviewController{reviews: reviews, users: users}
}

// SubmitReview records the caller's rating for a course. One review per
// user per course; a second attempt is rejected with a conflict.
func (h *ReviewController) SubmitReview(c *fiber.Ctx) error {
	uid, ok := c.Locals("uid").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedSubmitReview").(*reviewValidator.SubmitReviewPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := h.users.GetByUID(c.UserContext(), uid)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	review, err := h.reviews.Submit(c.UserContext(), services.SubmitReviewPayload{
		CourseID: c.Params("id"),
		Reviewer: models.Reviewer{
			UID:        user.UID,
			Name:       user.Name,
			IsVerified: user.EmailVerified,
			PhotoURL:   user.DisplayPicture,
		},
		Rating:      reqData.Rating,
		Title:       reqData.Title,
		Description: reqData.Description,
	})
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	case errors.Is(err, services.ErrAlreadyReviewed):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already reviewed this course!", nil)
	case errors.Is(err, services.ErrInvalidRating):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Rating must be between 1 and 5!", nil)
	case err != nil:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review submitted successfully!", review)
}

// ListReviews serves a course's reviews, newest first, cursor-paginated.
func (h *ReviewController) ListReviews(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReviewList").(*reviewValidator.ReviewListQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	page, err := h.reviews.ListByCourse(c.UserContext(), c.Params("id"), reqData.Limit, reqData.Cursor)
	if errors.Is(err, services.ErrBadCursor) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid pagination cursor!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", page)
}
