package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"Backend-SchoolAdmin/src/models"
	"Backend-SchoolAdmin/src/services/uploads"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// เทสเฉพาะเส้นทางที่จบก่อนถึง store — service เป็น nil ได้เพราะไม่ถูกเรียก

func decodeError(t *testing.T, resp io.Reader) models.ErrorResponse {
	t.Helper()
	raw, err := io.ReadAll(resp)
	require.NoError(t, err)

	var envelope models.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return envelope
}

func TestStudentCreateValidationShortCircuits(t *testing.T) {
	app := fiber.New()
	app.Post("/api/students", NewStudentController(nil).Create)

	t.Run("EmptyBody", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/students", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		envelope := decodeError(t, resp.Body)
		assert.Equal(t, "Erreurs de validation", envelope.Message)
		assert.Len(t, envelope.Errors, 13)
	})

	t.Run("InvalidEmailOnly", func(t *testing.T) {
		body := `{"prenom":"Ana","nom":"Diallo","email":"pas-un-email","telephone":"0102",` +
			`"dateNaissance":"2010-01-01","genre":"feminin","niveau":"primaire","classe":"cm1",` +
			`"adresse":"1 rue A","ville":"Paris","codePostal":"75001","nomParent":"Diallo","telephoneParent":"0103"}`
		req := httptest.NewRequest("POST", "/api/students", strings.NewReader(body))
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		envelope := decodeError(t, resp.Body)
		require.Len(t, envelope.Errors, 1)
		assert.Equal(t, "email", envelope.Errors[0].Field)
		assert.Equal(t, "pas-un-email", envelope.Errors[0].Value)
	})
}

func TestStudentUpdateStatusInvalidBody(t *testing.T) {
	app := fiber.New()
	app.Put("/api/students/:id/status", NewStudentController(nil).UpdateStatus)

	req := httptest.NewRequest("PUT", "/api/students/abc/status", strings.NewReader(`{oops`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestJobCreateRejectsBadResumeBeforePersisting(t *testing.T) {
	up := uploads.NewService(t.TempDir())
	app := fiber.New()
	app.Post("/api/jobs", NewJobController(nil, up).Create)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for field, value := range map[string]string{
		"nom":               "Martin",
		"prenom":            "Claire",
		"email":             "claire@x.com",
		"posteSouhaite":     "Professeur",
		"messageMotivation": "Ma motivation",
	} {
		require.NoError(t, w.WriteField(field, value))
	}
	fw, err := w.CreateFormFile("cv", "cv.exe")
	require.NoError(t, err)
	_, err = fw.Write([]byte("binaire"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/jobs", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	envelope := decodeError(t, resp.Body)
	assert.Equal(t, "Format de fichier non autorisé. Utilisez PDF, DOC ou DOCX", envelope.Message)
}

func TestJobCreateValidationErrors(t *testing.T) {
	up := uploads.NewService(t.TempDir())
	app := fiber.New()
	app.Post("/api/jobs", NewJobController(nil, up).Create)

	req := httptest.NewRequest("POST", "/api/jobs", strings.NewReader(`{"prenom":"Claire"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	envelope := decodeError(t, resp.Body)
	assert.Equal(t, "Erreurs de validation", envelope.Message)
	assert.Len(t, envelope.Errors, 4)
}
