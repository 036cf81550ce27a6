package courseValidator

import (
	"strings"
	"time"

	"coursehub/middleware"
	"coursehub/models"
	"coursehub/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CourseListQuery is the validated query string of the catalog listing.
type CourseListQuery struct {
	Category    string `query:"category"`
	Ratings     string `query:"ratings"`
	OrderDateBy string `query:"order_date_by"`
	Limit       int    `query:"limit"`
	Cursor      string `query:"cursor"`
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseListQuery)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Ratings != "" &&
			reqData.Ratings != string(services.RatingsHighToLow) &&
			reqData.Ratings != string(services.RatingsLowToHigh) {
			errors["ratings"] = "Ratings must be high_to_low or low_to_high!"
		}
		if reqData.OrderDateBy != "" &&
			reqData.OrderDateBy != string(services.OrderDateLatest) &&
			reqData.OrderDateBy != string(services.OrderDateOldest) {
			errors["order_date_by"] = "Order must be latest or oldest!"
		}
		if reqData.Limit < 0 || reqData.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseList", reqData)
		return c.Next()
	}
}

// CreateCoursePayload is the validated multipart form of course creation.
// The thumbnail file itself is read by the controller.
type CreateCoursePayload struct {
	Title         string  `form:"title"`
	Description   string  `form:"description"`
	ContentURL    string  `form:"content_url"`
	Price         float64 `form:"price"`
	Currency      string  `form:"currency"`
	Language      string  `form:"language"`
	CategoryID    string  `form:"category_id"`
	CategoryTitle string  `form:"category_title"`
	AuthorUID     string  `form:"author_uid"`
	AuthorName    string  `form:"author_name"`
	StartDate     string  `form:"start_date"` // RFC3339, empty for recorded/live
	IsRecorded    bool    `form:"is_recorded"`
	IsLive        bool    `form:"is_live"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCoursePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}
		if validate.Var(reqData.ContentURL, "required,url") != nil {
			errors["content_url"] = "A valid content URL is required!"
		}
		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}
		if reqData.Currency != "" && !models.ValidCurrency(reqData.Currency) {
			errors["currency"] = "Currency must be INR, USD or EUR!"
		}
		if strings.TrimSpace(reqData.CategoryID) == "" {
			errors["category_id"] = "Category is required!"
		}
		if strings.TrimSpace(reqData.AuthorName) == "" {
			errors["author_name"] = "Author name is required!"
		}
		if reqData.StartDate != "" {
			if _, err := time.Parse(time.RFC3339, reqData.StartDate); err != nil {
				errors["start_date"] = "Start date must be RFC3339!"
			}
		} else if !reqData.IsRecorded && !reqData.IsLive {
			errors["start_date"] = "Provide a start date or mark the course recorded/live!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateCourse", reqData)
		return c.Next()
	}
}

// UpdateCoursePayload is the validated body of an admin course edit.
type UpdateCoursePayload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ContentURL  string   `json:"content_url"`
	Language    string   `json:"language"`
	Currency    string   `json:"currency"`
	Price       *float64 `json:"price"`
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCoursePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ContentURL != "" && validate.Var(reqData.ContentURL, "url") != nil {
			errors["content_url"] = "Content URL must be valid!"
		}
		if reqData.Currency != "" && !models.ValidCurrency(reqData.Currency) {
			errors["currency"] = "Currency must be INR, USD or EUR!"
		}
		if reqData.Price != nil && *reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateCourse", reqData)
		return c.Next()
	}
}
