package middleware

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SanitizeBody ตัดช่องว่างหัวท้ายของ string ทุกตัวใน JSON body ก่อนถึง handler
// body ที่ไม่ใช่ JSON (เช่น multipart) ปล่อยผ่าน — controller ตัดเองตอนอ่าน form
func SanitizeBody(c *fiber.Ctx) error {
	contentType := string(c.Request().Header.ContentType())
	if !strings.Contains(contentType, fiber.MIMEApplicationJSON) || len(c.Body()) == 0 {
		return c.Next()
	}

	var body map[string]interface{}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		// body ผิดรูป ให้ handler เป็นคนตอบ 400 เอง
		return c.Next()
	}

	for key, value := range body {
		if s, ok := value.(string); ok {
			body[key] = strings.TrimSpace(s)
		}
	}

	cleaned, err := json.Marshal(body)
	if err != nil {
		return c.Next()
	}
	c.Request().SetBody(cleaned)

	return c.Next()
}
