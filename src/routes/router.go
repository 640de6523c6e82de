package routes

import (
	"Backend-SchoolAdmin/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// InitRoutes รวม routes ของแต่ละ module ไว้ใต้ /api
func InitRoutes(app *fiber.App, studentCtl *controllers.StudentController, jobCtl *controllers.JobController, authCtl *controllers.AuthController) {
	api := app.Group("/api")

	authRoutes(api, authCtl)
	studentRoutes(api, studentCtl)
	jobRoutes(api, jobCtl)

	// Route เช็คว่า API ทำงานอยู่
	api.Get("/test", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "API Backend fonctionnel !"})
	})
}
