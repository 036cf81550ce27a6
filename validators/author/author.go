package authorValidator

import (
	"encoding/json"
	"strings"

	"coursehub/middleware"
	"coursehub/models"

	"github.com/gofiber/fiber/v2"
)

// CreateAuthorPayload is the validated multipart form of author creation.
// Socials arrive as a JSON-encoded form field; the image file is read by
// the controller.
type CreateAuthorPayload struct {
	Name    string `form:"name"`
	Bio     string `form:"bio"`
	Image   string `form:"image"` // external picture URL, used when no file is uploaded
	UserID  string `form:"user_id"`
	Socials string `form:"socials"`

	ParsedSocials []models.AuthorSocial `form:"-"`
}

func CreateAuthor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateAuthorPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if len(reqData.Bio) > 500 {
			errors["bio"] = "Bio cannot exceed 500 characters!"
		}
		if reqData.Socials != "" {
			if err := json.Unmarshal([]byte(reqData.Socials), &reqData.ParsedSocials); err != nil {
				errors["socials"] = "Socials must be a JSON array of {id, value}!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateAuthor", reqData)
		return c.Next()
	}
}
