package reviewController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursehub/config"
	"coursehub/controllers/reviewController"
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/routers/reviewRoutes"
	"coursehub/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	h := reviewController.New(services.NewReviewService(db), services.NewUserService(db))
	app := fiber.New()
	reviewRoutes.SetupReviewRoutes(app, h)
	return app, db
}

func seedUserAndCourse(t *testing.T, db *gorm.DB) {
	t.Helper()

	user := models.User{
		UID:           "ann",
		Name:          "Ann",
		Email:         "ann@example.com",
		EmailVerified: true,
	}
	require.NoError(t, db.Create(&user).Error)

	course := models.Course{
		ID:         "synth101",
		Title:      "Synthesis 101",
		ContentURL: "https://content.example.com/synth101",
		Currency:   models.CurrencyUSD,
	}
	require.NoError(t, db.Create(&course).Error)
}

func postReview(t *testing.T, app *fiber.App, token string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/courses/synth101/reviews", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestSubmitReviewRequiresAuth(t *testing.T) {
	app, db := newTestApp(t)
	seedUserAndCourse(t, db)

	resp := postReview(t, app, "", map[string]any{"rating": 5, "title": "Great"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSubmitReviewFlow(t *testing.T) {
	app, db := newTestApp(t)
	seedUserAndCourse(t, db)

	token, err := middleware.GenerateJWT("ann", "Ann", "ann@example.com", models.RoleUser)
	require.NoError(t, err)

	resp := postReview(t, app, token, map[string]any{
		"rating": 5, "title": "Great", "description": "Loved it",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeEnvelope(t, resp)
	assert.Equal(t, true, body["status"])

	var course models.Course
	require.NoError(t, db.First(&course, "id = ?", "synth101").Error)
	assert.Equal(t, 5.0, course.AverageRatings)

	// second submission from the same user conflicts
	resp = postReview(t, app, token, map[string]any{"rating": 1, "title": "Changed my mind"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSubmitReviewValidation(t *testing.T) {
	app, db := newTestApp(t)
	seedUserAndCourse(t, db)

	token, err := middleware.GenerateJWT("ann", "Ann", "ann@example.com", models.RoleUser)
	require.NoError(t, err)

	resp := postReview(t, app, token, map[string]any{"rating": 9, "title": "Too high"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestListReviewsPublic(t *testing.T) {
	app, db := newTestApp(t)
	seedUserAndCourse(t, db)

	token, err := middleware.GenerateJWT("ann", "Ann", "ann@example.com", models.RoleUser)
	require.NoError(t, err)
	resp := postReview(t, app, token, map[string]any{"rating": 4, "title": "Solid"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/courses/synth101/reviews", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	items, ok := data["items"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 1)
	assert.Equal(t, true, data["exhausted"])
}
