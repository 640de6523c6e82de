package routes

import (
	"Backend-SchoolAdmin/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// studentRoutes เส้นทางสำหรับการสมัครเรียน
func studentRoutes(router fiber.Router, ctl *controllers.StudentController) {
	studentGroup := router.Group("/students")

	// Route de test เดิมของหน้าเว็บ
	studentGroup.Get("/test", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Route students fonctionnelle"})
	})

	studentGroup.Post("/", ctl.Create)                // สมัครใหม่
	studentGroup.Get("/", ctl.List)                   // รายการ + ตัวกรอง
	studentGroup.Get("/:id", ctl.GetByID)             // ดูรายคน
	studentGroup.Put("/:id/status", ctl.UpdateStatus) // เปลี่ยนสถานะ
	studentGroup.Delete("/:id", ctl.Delete)           // ลบ
}
