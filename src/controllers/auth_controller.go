package controllers

import (
	"os"

	"Backend-SchoolAdmin/src/models"
	"Backend-SchoolAdmin/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthController ตรวจทางเข้าหน้า admin
// เทียบค่าตรง ๆ กับ secret ใน env — ไม่มี token ไม่มี session
type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// LoginAdmin godoc
// @Summary      Connexion admin
// @Description  Vérifie les identifiants admin configurés
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body object true "{username, password}"
// @Success      200 {object} models.SuccessResponse
// @Failure      400 {object} models.ErrorResponse
// @Failure      401 {object} models.ErrorResponse
// @Router       /login-admin [post]
func (ctl *AuthController) LoginAdmin(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Success: false,
			Message: "Requête invalide : corps vide ou mal formé",
		})
	}

	if req.Username != os.Getenv("ADMIN_USERNAME") || req.Password != os.Getenv("ADMIN_PASSWORD") {
		return utils.RespondError(c, utils.InvalidCredentials())
	}

	return c.JSON(models.SuccessResponse{Success: true})
}
