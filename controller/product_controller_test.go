package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductsIsPublic(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode(t, resp)["products"])
}

func TestProductMutationsRequireAuth(t *testing.T) {
	app, _ := newTestApp(t)

	payload := fiber.Map{"item": "Thing", "description": "a thing", "price": "1.00"}

	resp := doJSON(t, app, http.MethodPost, "/api/products", "", payload)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/products/1", "", payload)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/products/1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateProduct(t *testing.T) {
	app, _ := newTestApp(t)
	registerUser(t, app, "Ada Lovelace", "ada@example.com", "secret1")
	token := loginToken(t, app, "ada@example.com", "secret1")

	resp := doJSON(t, app, http.MethodPost, "/api/products", token, fiber.Map{
		"type":        "Books",
		"item":        "Sketch of the Analytical Engine",
		"description": "Notes by the translator",
		"price":       "25.90",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "Books", body["type"])
	assert.Equal(t, "Sketch of the Analytical Engine", body["item"])
	price := decimal.RequireFromString(body["price"].(string))
	assert.True(t, price.Equal(decimal.RequireFromString("25.90")))

	listed := decode(t, doJSON(t, app, http.MethodGet, "/api/products", "", nil))
	require.Len(t, listed["products"], 1)
}

func TestCreateProductDefaultsTypeToOthers(t *testing.T) {
	app, _ := newTestApp(t)
	registerUser(t, app, "Ada Lovelace", "ada@example.com", "secret1")
	token := loginToken(t, app, "ada@example.com", "secret1")

	resp := doJSON(t, app, http.MethodPost, "/api/products", token, fiber.Map{
		"item":        "Mystery Box",
		"description": "contents unknown",
		"price":       "10.00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Others", decode(t, resp)["type"])
}

func TestCreateProductValidation(t *testing.T) {
	app, _ := newTestApp(t)
	registerUser(t, app, "Ada Lovelace", "ada@example.com", "secret1")
	token := loginToken(t, app, "ada@example.com", "secret1")

	longDescription := make([]byte, 1001)
	for i := range longDescription {
		longDescription[i] = 'x'
	}

	cases := []struct {
		name    string
		payload fiber.Map
		field   string
	}{
		{"missing item", fiber.Map{"description": "d", "price": "1.00"}, "item"},
		{"long description", fiber.Map{"item": "i", "description": string(longDescription), "price": "1.00"}, "description"},
		{"negative price", fiber.Map{"item": "i", "description": "d", "price": "-5.00"}, "price"},
		{"oversized price", fiber.Map{"item": "i", "description": "d", "price": "100000000.00"}, "price"},
		{"unknown type", fiber.Map{"item": "i", "description": "d", "price": "1.00", "type": "Vehicles"}, "type"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/products", token, tc.payload)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			fields, ok := decode(t, resp)["error"].(map[string]interface{})
			require.True(t, ok)
			assert.Contains(t, fields, tc.field)
		})
	}
}

func TestUpdateProduct(t *testing.T) {
	app, _ := newTestApp(t)
	registerUser(t, app, "Ada Lovelace", "ada@example.com", "secret1")
	token := loginToken(t, app, "ada@example.com", "secret1")
	id := createProduct(t, app, token, "Difference Engine", "1000.00")

	resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/products/%d", id), token, fiber.Map{
		"type":        "Others",
		"item":        "Difference Engine No. 2",
		"description": "improved design",
		"price":       "2000.00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, float64(id), body["id"])
	assert.Equal(t, "Difference Engine No. 2", body["item"])
	assert.Equal(t, "Others", body["type"])

	t.Run("unknown product", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/api/products/9999", token, fiber.Map{
			"item": "x", "description": "y", "price": "1.00",
		})
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Product not found", decode(t, resp)["message"])
	})
}

func TestDeleteProduct(t *testing.T) {
	app, _ := newTestApp(t)
	registerUser(t, app, "Ada Lovelace", "ada@example.com", "secret1")
	token := loginToken(t, app, "ada@example.com", "secret1")
	id := createProduct(t, app, token, "Prototype", "1.00")

	resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Product deleted successfully", decode(t, resp)["message"])

	listed := decode(t, doJSON(t, app, http.MethodGet, "/api/products", "", nil))
	assert.Empty(t, listed["products"])

	t.Run("unknown product is a 404", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), token, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
