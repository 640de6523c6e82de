package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"Backend-SchoolAdmin/src/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// respond ยิง request ผ่าน fiber แล้วคืน status + envelope ที่ decode แล้ว
func respond(t *testing.T, err error) (int, models.ErrorResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return RespondError(c, err)
	})

	resp, testErr := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, testErr)
	defer resp.Body.Close()

	body, testErr := io.ReadAll(resp.Body)
	require.NoError(t, testErr)

	var envelope models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &envelope))
	return resp.StatusCode, envelope
}

func TestRespondErrorValidationFailed(t *testing.T) {
	violations := []models.FieldError{
		{Field: "email", Message: "Email invalide", Value: "abc"},
	}

	status, envelope := respond(t, ValidationFailed(violations))

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Erreurs de validation", envelope.Message)
	require.Len(t, envelope.Errors, 1)
	assert.Equal(t, "email", envelope.Errors[0].Field)
	assert.Equal(t, "abc", envelope.Errors[0].Value)
}

func TestRespondErrorDuplicateKey(t *testing.T) {
	status, envelope := respond(t, DuplicateKey("email"))

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "email déjà existant", envelope.Message)
	require.Len(t, envelope.Errors, 1)
	assert.Equal(t, "email", envelope.Errors[0].Field)
	assert.Equal(t, "Cette valeur existe déjà", envelope.Errors[0].Message)
}

func TestRespondErrorByKind(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"InvalidID", InvalidID(), fiber.StatusBadRequest, "ID invalide"},
		{"NotFound", NotFound("Étudiant non trouvé"), fiber.StatusNotFound, "Étudiant non trouvé"},
		{"InvalidStatus", InvalidStatus(), fiber.StatusBadRequest, "Statut invalide"},
		{"FileRejected", FileRejected("Format de fichier non autorisé. Utilisez PDF, DOC ou DOCX"), fiber.StatusBadRequest, "Format de fichier non autorisé. Utilisez PDF, DOC ou DOCX"},
		{"InvalidCredentials", InvalidCredentials(), fiber.StatusUnauthorized, "Identifiants incorrects"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, envelope := respond(t, tt.err)
			assert.Equal(t, tt.status, status)
			assert.False(t, envelope.Success)
			assert.Equal(t, tt.message, envelope.Message)
		})
	}
}

// fault ที่ไม่รู้จักต้องไม่รั่วรายละเอียดภายในออกไป
func TestRespondErrorUnclassified(t *testing.T) {
	status, envelope := respond(t, errors.New("connection refused: mongodb://secret@host"))

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Erreur serveur interne", envelope.Message)
	assert.Empty(t, envelope.Errors)
}
