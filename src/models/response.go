package models

// FieldError รายละเอียดของ field ที่ไม่ผ่านการตรวจสอบ
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Success bool         `json:"success"` // false เสมอ
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// SuccessResponse โครงสร้างมาตรฐานสำหรับการตอบกลับสำเร็จ
type SuccessResponse struct {
	Success bool        `json:"success"` // true เสมอ
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
