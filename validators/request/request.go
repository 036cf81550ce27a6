package requestValidator

import (
	"coursehub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type AddRequestPayload struct {
	URL string `json:"url"`
}

func AddRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AddRequestPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if validate.Var(reqData.URL, "required,url") != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"url": "A valid course URL is required!",
			})
		}

		c.Locals("validatedAddRequest", reqData)
		return c.Next()
	}
}
