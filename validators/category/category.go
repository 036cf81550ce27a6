package categoryValidator

import (
	"regexp"
	"strings"

	"coursehub/middleware"

	"github.com/gofiber/fiber/v2"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)

type CreateCategoryPayload struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCategoryPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !slugPattern.MatchString(reqData.ID) {
			errors["id"] = "Id must be a lowercase slug like software_design!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateCategory", reqData)
		return c.Next()
	}
}
