package categoryController

import (
	"coursehub/middleware"
	"coursehub/services"
	categoryValidator "coursehub/validators/category"

	"github.com/gofiber/fiber/v2"
)

type CategoryController struct {
	categories *services.CategoryService
}

func New(categories *services.CategoryService) *CategoryController {
	return &CategoryController{categories: categories}
}

func (h *CategoryController) ListCategories(c *fiber.Ctx) error {
	categories, err := h.categories.List(c.UserContext())
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}

// CreateCategory writes a category under the caller-supplied slug.
// Re-creating an existing slug overwrites the title.
func (h *CategoryController) CreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateCategory").(*categoryValidator.CreateCategoryPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	category, err := h.categories.Create(c.UserContext(), reqData.ID, reqData.Title)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category created successfully!", category)
}
