package middleware

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

func echoApp() *fiber.App {
	app := fiber.New()
	app.Use(SanitizeBody)
	app.Post("/", func(c *fiber.Ctx) error {
		return c.Send(c.Body())
	})
	return app
}

func TestSanitizeBodyTrimsStrings(t *testing.T) {
	app := echoApp()

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"prenom":"  Ana ","age":12,"nom":"Diallo"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "Ana", body["prenom"])
	assert.Equal(t, "Diallo", body["nom"])
	assert.Equal(t, float64(12), body["age"])
}

func TestSanitizeBodyIgnoresNonJSON(t *testing.T) {
	app := echoApp()

	req := httptest.NewRequest("POST", "/", strings.NewReader("  brut  "))
	req.Header.Set("Content-Type", fiber.MIMETextPlain)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "  brut  ", string(raw))
}

func TestSanitizeBodyPassesMalformedJSONThrough(t *testing.T) {
	app := echoApp()

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{cassé`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// middleware ไม่ตัดสิน body ผิดรูป ปล่อยให้ handler ตอบเอง
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, `{cassé`, string(raw))
}
