package courseController

import (
	"errors"
	"path/filepath"
	"time"

	"coursehub/config"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/services"
	"coursehub/utils"
	courseValidator "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseController struct {
	courses *services.CourseService
}

func New(courses *services.CourseService) *CourseController {
	return &CourseController{courses: courses}
}

// ListByCategory serves the paginated catalog. Clients append pages until
// the exhausted flag comes back true; changing any filter restarts from
// the first page without a cursor.
func (h *CourseController) ListByCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseList").(*courseValidator.CourseListQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	page, err := h.courses.ListByCategory(c.UserContext(), services.CourseListParams{
		CategoryID:  reqData.Category,
		Ratings:     services.RatingsFilter(reqData.Ratings),
		OrderDateBy: services.OrderDateBy(reqData.OrderDateBy),
		PageSize:    reqData.Limit,
		Cursor:      reqData.Cursor,
	})
	if errors.Is(err, services.ErrBadCursor) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid pagination cursor!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", page)
}

func (h *CourseController) GetCourse(c *fiber.Ctx) error {
	course, err := h.courses.GetOne(c.UserContext(), c.Params("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

func (h *CourseController) TopOfMonth(c *fiber.Ctx) error {
	courses, err := h.courses.TopOfMonth(c.UserContext())
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch top courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Top courses fetched successfully!", courses)
}

func (h *CourseController) Popular(c *fiber.Ctx) error {
	courses, err := h.courses.Popular(c.UserContext())
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch popular courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Popular courses fetched successfully!", courses)
}

// ListMine returns the courses owned by the signed-in author.
func (h *CourseController) ListMine(c *fiber.Ctx) error {
	uid, ok := c.Locals("uid").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courses, err := h.courses.ListMine(c.UserContext(), uid)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch your courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// ListAll returns every course for the super-admin dashboard.
func (h *CourseController) ListAll(c *fiber.Ctx) error {
	courses, err := h.courses.ListAll(c.UserContext())
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// CreateCourse stores the thumbnail under the pre-generated course id and
// writes the course document.
func (h *CourseController) CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateCourse").(*courseValidator.CreateCoursePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	courseID := uuid.NewString()

	var thumbnail string
	if file, err := c.FormFile("image"); err == nil && file != nil {
		destDir := filepath.Join(config.AppConfig.UploadDir, "courses", courseID)
		savedPath, err := utils.SaveUploadedFile(file, destDir)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store thumbnail!", nil)
		}
		thumbnail = utils.GetFileURL(savedPath)
	}

	var start models.CourseStart
	if reqData.StartDate != "" {
		date, _ := time.Parse(time.RFC3339, reqData.StartDate)
		start.Date = &date
	}
	start.IsRecorded = reqData.IsRecorded
	start.IsLive = reqData.IsLive

	currency := models.Currency(reqData.Currency)
	if currency == "" {
		currency = models.CurrencyINR
	}

	uid, _ := c.Locals("uid").(string)
	role, _ := c.Locals("role").(models.Role)

	authorUID := reqData.AuthorUID
	if authorUID == "" {
		authorUID = uid
	}
	if authorUID != uid && !models.CheckIfUserCan(role, models.PermMentionOtherAuthor) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot credit a course to another author!", nil)
	}

	course, err := h.courses.Create(c.UserContext(), services.CreateCoursePayload{
		ID:          courseID,
		Title:       reqData.Title,
		Description: reqData.Description,
		ContentURL:  reqData.ContentURL,
		Thumbnail:   thumbnail,
		Price:       reqData.Price,
		Currency:    currency,
		Language:    reqData.Language,
		Category: models.CourseCategory{
			ID:    reqData.CategoryID,
			Title: reqData.CategoryTitle,
		},
		Author: models.CourseAuthor{
			UID:  authorUID,
			Name: reqData.AuthorName,
		},
		Start: start,
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course created successfully!", course)
}

func (h *CourseController) UpdateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUpdateCourse").(*courseValidator.UpdateCoursePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := h.courses.Update(c.UserContext(), c.Params("id"), services.UpdateCoursePayload{
		Title:       reqData.Title,
		Description: reqData.Description,
		ContentURL:  reqData.ContentURL,
		Language:    reqData.Language,
		Currency:    models.Currency(reqData.Currency),
		Price:       reqData.Price,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}
