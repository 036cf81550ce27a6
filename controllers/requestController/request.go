package requestController

import (
	"coursehub/middleware"
	"coursehub/services"
	requestValidator "coursehub/validators/request"

	"github.com/gofiber/fiber/v2"
)

type RequestController struct {
	requests *services.RequestService
}

func New(requests *services.RequestService) *RequestController {
	return &RequestController{requests: requests}
}

// AddRequest records a course URL suggested by a signed-in user.
func (h *RequestController) AddRequest(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAddRequest").(*requestValidator.AddRequestPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	request, err := h.requests.Create(c.UserContext(), reqData.URL)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Request submitted successfully!", request)
}

func (h *RequestController) ListRequests(c *fiber.Ctx) error {
	requests, err := h.requests.List(c.UserContext())
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Requests fetched successfully!", requests)
}
