package authController_test

import (
	"bytes"
	"elearn/config"
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	authRoutes "elearn/routers/authRoutes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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
	authRoutes.SetupAuthRoutes(app)
	return app
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

func registerBody(email string) map[string]string {
	return map[string]string{
		"name":     "Alice Doe",
		"username": "alice",
		"email":    email,
		"password": "Abcd123!",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	app := setupTestApp(t, "auth_register_login")

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", registerBody("alice@example.com"))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["status"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "student", data["role"])

	// Stored hash must be salted bcrypt, never the plain password
	var user models.User
	require.NoError(t, database.Database.Db.Where("email = ?", "alice@example.com").First(&user).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Abcd123!")))

	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "Abcd123!",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data = body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "alice", data["username"])
	assert.Equal(t, "student", data["role"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupTestApp(t, "auth_duplicate_email")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", "", registerBody("dup@example.com"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Other fields differing does not matter, the email decides
	second := registerBody("dup@example.com")
	second["name"] = "Someone Else"
	second["username"] = "someone"
	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", second)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Email already exists!", body["message"])
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	app := setupTestApp(t, "auth_weak_password")

	weak := registerBody("weak@example.com")
	weak["password"] = "abcdefgh"
	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", "", weak)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	app := setupTestApp(t, "auth_missing_fields")

	incomplete := registerBody("missing@example.com")
	incomplete["name"] = ""
	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", "", incomplete)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	bad := registerBody("not-an-email")
	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/register", "", bad)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestLoginWrongPasswordIssuesNoToken(t *testing.T) {
	app := setupTestApp(t, "auth_wrong_password")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", "", registerBody("bob@example.com"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "bob@example.com",
		"password": "Wrong123!",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, body["data"])
}

func TestLoginUnknownEmail(t *testing.T) {
	app := setupTestApp(t, "auth_unknown_email")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "ghost@example.com",
		"password": "Abcd123!",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogout(t *testing.T) {
	app := setupTestApp(t, "auth_logout")

	// No token
	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token, err := middleware.GenerateJWT(1, "alice", models.RoleStudent)
	require.NoError(t, err)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Logout successful.", body["message"])

	// Logout is stateless, the token stays usable until expiry
	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
