package authorController

import (
	"path/filepath"

	"coursehub/config"
	"coursehub/middleware"
	"coursehub/services"
	"coursehub/utils"
	authorValidator "coursehub/validators/author"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthorController struct {
	authors *services.AuthorService
}

func New(authors *services.AuthorService) *AuthorController {
	return &AuthorController{authors: authors}
}

func (h *AuthorController) ListAuthors(c *fiber.Ctx) error {
	authors, err := h.authors.List(c.UserContext())
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch authors!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Authors fetched successfully!", authors)
}

func (h *AuthorController) PopularAuthors(c *fiber.Ctx) error {
	authors, err := h.authors.Popular(c.UserContext())
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch popular authors!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Popular authors fetched successfully!", authors)
}

// CreateAuthor uploads the display picture first when one is attached,
// then writes the author document referencing its public URL.
func (h *AuthorController) CreateAuthor(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateAuthor").(*authorValidator.CreateAuthorPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	authorUID := uuid.NewString()

	displayPicture := reqData.Image
	if file, err := c.FormFile("image_file"); err == nil && file != nil {
		destDir := filepath.Join(config.AppConfig.UploadDir, "authors", authorUID)
		savedPath, err := utils.SaveUploadedFile(file, destDir)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store display picture!", nil)
		}
		displayPicture = utils.GetFileURL(savedPath)
	}

	author, err := h.authors.Create(c.UserContext(), services.CreateAuthorPayload{
		UID:            authorUID,
		Name:           reqData.Name,
		Bio:            reqData.Bio,
		DisplayPicture: displayPicture,
		ReferenceUID:   reqData.UserID,
		Socials:        reqData.ParsedSocials,
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create author!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Author created successfully!", author)
}
