package courseController_test

import (
	"bytes"
	"elearn/config"
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	courseRoutes "elearn/routers/courseRoutes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T, name string) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:      "test-secret",
		JWTIssuer:   "elearn-api",
		JWTAudience: "elearn-client",
		SaltRound:   4,
	}

	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app
}

func seedUser(t *testing.T, username string, role models.Role) (models.User, string) {
	t.Helper()

	user := models.User{
		Name:         username,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role)
	require.NoError(t, err)

	return user, token
}

func seedCourse(t *testing.T, title string, price float64, createdAt time.Time) models.Course {
	t.Helper()

	course := models.Course{
		Title:       title,
		Description: "About " + title,
		Price:       price,
		Duration:    90,
		Modules: []models.CourseModule{
			{Title: "Intro"},
			{Title: "Core"},
			{Title: "Wrap up"},
		},
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	require.NoError(t, database.Database.Db.Model(&course).UpdateColumn("created_at", createdAt).Error)

	return course
}

func seedCoupon(t *testing.T, code string, discountPct float64, quota int, expiry time.Time) models.Coupon {
	t.Helper()

	coupon := models.Coupon{
		Code:        code,
		DiscountPct: discountPct,
		Quota:       quota,
		ExpiryDate:  expiry,
	}
	require.NoError(t, database.Database.Db.Create(&coupon).Error)

	return coupon
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &parsed))

	return resp, parsed
}

func dataField(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "response data missing: %v", body)
	return data
}
