package routes

import (
	"Backend-SchoolAdmin/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// jobRoutes เส้นทางสำหรับการสมัครงาน
// stats ต้องมาก่อน /:id ไม่งั้น "stats" จะถูกจับเป็น id
func jobRoutes(router fiber.Router, ctl *controllers.JobController) {
	jobGroup := router.Group("/jobs")

	jobGroup.Get("/stats/overview", ctl.Stats)

	jobGroup.Post("/", ctl.Create)
	jobGroup.Get("/", ctl.List)
	jobGroup.Get("/:id", ctl.GetByID)
	jobGroup.Put("/:id/status", ctl.UpdateStatus)
	jobGroup.Delete("/:id", ctl.Delete)
}
