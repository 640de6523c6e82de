package validation

import (
	"Backend-SchoolAdmin/src/models"

	"github.com/go-playground/validator/v10"
)

// validate ใช้ instance เดียวทั้งโปรเซส (thread-safe ตามเอกสารของ validator)
var validate = validator.New()

// Rule กติกาตรวจสอบหนึ่งข้อ — เป็น data ไม่ใช่ code
// Tag คือ constraint ของ validator เช่น "required", "email",
// "datetime=2006-01-02", "oneof=masculin feminin"
type Rule struct {
	Field   string
	Tag     string
	Message string
}

// Run ตรวจ input ตามลำดับกติกาที่ประกาศไว้
// คืน violation ทีละข้อที่ไม่ผ่าน (เรียงตามลำดับประกาศ) — ว่างแปลว่าผ่าน
func Run(rules []Rule, input map[string]string) []models.FieldError {
	var violations []models.FieldError

	for _, rule := range rules {
		value := input[rule.Field]
		if err := validate.Var(value, rule.Tag); err != nil {
			violations = append(violations, models.FieldError{
				Field:   rule.Field,
				Message: rule.Message,
				Value:   value,
			})
		}
	}

	return violations
}
