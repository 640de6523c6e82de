package routes

import (
	"Backend-SchoolAdmin/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// authRoutes เส้นทางเข้าสู่ระบบ admin
func authRoutes(router fiber.Router, ctl *controllers.AuthController) {
	router.Post("/login-admin", ctl.LoginAdmin)
}
