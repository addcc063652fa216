package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pascaretta5/tech-z-one-backend/database"
	"github.com/pascaretta5/tech-z-one-backend/routes"
)

const testSecret = "test-secret"

// newTestApp builds the full route table over a fresh in-memory database,
// one per test so tests stay independent.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	routes.Register(app, db, nil, testSecret)
	return app, db
}

// doJSON performs a request against the app, optionally with a bearer token
// and a JSON body.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func registerUser(t *testing.T, app *fiber.App, name, email, password string) uint {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/register", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	return uint(body["id"].(float64))
}

func loginToken(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/login", "", fiber.Map{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	token, ok := body["token"].(string)
	require.True(t, ok, "login response must carry a token")
	return token
}

func createProduct(t *testing.T, app *fiber.App, token, item, price string) uint {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/products", token, fiber.Map{
		"type":        "Electronics",
		"item":        item,
		"description": "test product",
		"price":       price,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	return uint(body["id"].(float64))
}
