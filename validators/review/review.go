package reviewValidator

import (
	"strings"

	"coursehub/middleware"

	"github.com/gofiber/fiber/v2"
)

type SubmitReviewPayload struct {
	Rating      int    `json:"rating"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func SubmitReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitReviewPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if len(reqData.Description) > 500 {
			errors["description"] = "Description cannot exceed 500 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmitReview", reqData)
		return c.Next()
	}
}

type ReviewListQuery struct {
	Limit  int    `query:"limit"`
	Cursor string `query:"cursor"`
}

func ReviewList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReviewListQuery)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if reqData.Limit < 0 || reqData.Limit > 100 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"limit": "Limit must be between 1 and 100!",
			})
		}

		c.Locals("validatedReviewList", reqData)
		return c.Next()
	}
}
