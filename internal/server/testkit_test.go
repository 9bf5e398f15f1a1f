package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"flatterer/internal/config"
	"flatterer/internal/database"
	"flatterer/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer builds a server over an in-memory sqlite database with a
// fresh fiber app. The metrics and limiter middleware are left out so tests
// exercise routes and identity resolution only.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	if err := os.Setenv("APP_ENV", "test"); err != nil {
		t.Fatalf("set APP_ENV: %v", err)
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.Models()...))

	cfg := &config.Config{
		JWTSecret: "test-secret-key",
		Port:      "0",
		Env:       "test",
	}

	srv := NewWithDB(cfg, db, nil)
	app := fiber.New()
	app.Use(srv.ResolveIdentity())
	srv.SetupRoutes(app)
	return srv, app
}

func jsonReq(t *testing.T, method, path string, payload any, token ...string) *http.Request {
	t.Helper()
	var req *http.Request
	if payload == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if len(token) > 0 && token[0] != "" {
		req.Header.Set("Authorization", "Bearer "+token[0])
	}
	return req
}

func doJSON(t *testing.T, app *fiber.App, req *http.Request, out any) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	if out != nil {
		defer func() { _ = resp.Body.Close() }()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func bodyString(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

type authUser struct {
	ID    uint
	Token string
}

// registerUser registers an account through the API and returns its id and token.
func registerUser(t *testing.T, app *fiber.App, username string, admin bool) authUser {
	t.Helper()

	payload := map[string]any{
		"name":         username,
		"username":     username,
		"password":     "TestPass123!",
		"confirm_pass": "TestPass123!",
		"admin":        admin,
	}

	var body struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	resp := doJSON(t, app, jsonReq(t, http.MethodPost, "/register", payload), &body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, body.Token)
	require.NotZero(t, body.User.ID)

	return authUser{ID: body.User.ID, Token: body.Token}
}

// createComplimentee creates a complimentee through the API and returns it.
func createComplimentee(t *testing.T, app *fiber.App, owner authUser, name, slug string) models.Complimentee {
	t.Helper()

	payload := map[string]string{"name": name, "url": slug, "greeting": "Hello " + name + "!"}
	var body struct {
		Complimentee models.Complimentee `json:"complimentee"`
	}
	resp := doJSON(t, app, jsonReq(t, http.MethodPost, "/add_complimentee", payload, owner.Token), &body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotZero(t, body.Complimentee.ID)
	return body.Complimentee
}

func seedGender(t *testing.T, srv *Server, label string) {
	t.Helper()
	require.NoError(t, srv.db.Create(&models.Gender{Label: label}).Error)
}
