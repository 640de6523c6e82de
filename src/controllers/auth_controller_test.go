package controllers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/login-admin", NewAuthController().LoginAdmin)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/login-admin", strings.NewReader(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	return resp.StatusCode, payload
}

func TestLoginAdmin(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "direction")
	t.Setenv("ADMIN_PASSWORD", "s3cret")

	app := loginApp()

	t.Run("ValidCredentials", func(t *testing.T) {
		status, payload := postLogin(t, app, `{"username":"direction","password":"s3cret"}`)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, true, payload["success"])
	})

	t.Run("WrongPassword", func(t *testing.T) {
		status, payload := postLogin(t, app, `{"username":"direction","password":"oops"}`)
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, false, payload["success"])
		assert.Equal(t, "Identifiants incorrects", payload["message"])
	})

	t.Run("WrongUsername", func(t *testing.T) {
		status, _ := postLogin(t, app, `{"username":"autre","password":"s3cret"}`)
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		status, payload := postLogin(t, app, `{pas du json`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, false, payload["success"])
	})
}
