package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger บันทึก method, path และ IP ของทุก request
func RequestLogger(c *fiber.Ctx) error {
	log.Printf("[%s] %s %s - IP: %s",
		time.Now().Format(time.RFC3339), c.Method(), c.OriginalURL(), c.IP())
	return c.Next()
}
