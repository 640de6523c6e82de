package utils

import (
	"errors"
	"log"

	"Backend-SchoolAdmin/src/models"

	"github.com/gofiber/fiber/v2"
)

// FaultKind ประเภทความผิดพลาดที่ map ไปเป็น HTTP response ได้
type FaultKind int

const (
	FaultValidation FaultKind = iota + 1
	FaultDuplicateKey
	FaultInvalidID
	FaultNotFound
	FaultInvalidStatus
	FaultFileRejected
	FaultInvalidCredentials
)

// AppError ความผิดพลาดที่จำแนกประเภทแล้วจาก service layer
type AppError struct {
	Kind    FaultKind
	Message string
	Errors  []models.FieldError
}

func (e *AppError) Error() string {
	return e.Message
}

// ValidationFailed ข้อมูลเข้าไม่ผ่านกติกาการตรวจสอบ
func ValidationFailed(violations []models.FieldError) *AppError {
	return &AppError{
		Kind:    FaultValidation,
		Message: "Erreurs de validation",
		Errors:  violations,
	}
}

// DuplicateKey ค่าในฟิลด์ซ้ำกับเอกสารที่มีอยู่ (เช่น email นักเรียน)
func DuplicateKey(field string) *AppError {
	return &AppError{
		Kind:    FaultDuplicateKey,
		Message: field + " déjà existant",
		Errors: []models.FieldError{
			{Field: field, Message: "Cette valeur existe déjà"},
		},
	}
}

// InvalidID รูปแบบ ObjectID ไม่ถูกต้อง (เทียบเท่า CastError)
func InvalidID() *AppError {
	return &AppError{Kind: FaultInvalidID, Message: "ID invalide"}
}

// NotFound ไม่พบเอกสารตาม id — message ระบุ resource เช่น "Étudiant non trouvé"
func NotFound(message string) *AppError {
	return &AppError{Kind: FaultNotFound, Message: message}
}

// InvalidStatus ค่าสถานะอยู่นอกชุดที่อนุญาต
func InvalidStatus() *AppError {
	return &AppError{Kind: FaultInvalidStatus, Message: "Statut invalide"}
}

// FileRejected ไฟล์ที่อัปโหลดผิดนโยบาย (นามสกุล/ขนาด)
func FileRejected(message string) *AppError {
	return &AppError{Kind: FaultFileRejected, Message: message}
}

// InvalidCredentials ข้อมูลเข้าสู่ระบบผู้ดูแลไม่ถูกต้อง
func InvalidCredentials() *AppError {
	return &AppError{Kind: FaultInvalidCredentials, Message: "Identifiants incorrects"}
}

// StatusOf HTTP status ของ fault แต่ละประเภท
func StatusOf(kind FaultKind) int {
	switch kind {
	case FaultValidation, FaultDuplicateKey, FaultInvalidID, FaultInvalidStatus, FaultFileRejected:
		return fiber.StatusBadRequest
	case FaultNotFound:
		return fiber.StatusNotFound
	case FaultInvalidCredentials:
		return fiber.StatusUnauthorized
	}
	return fiber.StatusInternalServerError
}

// RespondError แปลง error เป็น envelope เดียวกันทั้งระบบ
// fault ที่ไม่รู้จักตอบ 500 โดยไม่เปิดเผยรายละเอียดภายใน
func RespondError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return c.Status(StatusOf(appErr.Kind)).JSON(models.ErrorResponse{
			Success: false,
			Message: appErr.Message,
			Errors:  appErr.Errors,
		})
	}

	log.Println("❌ Erreur interne:", err)
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Success: false,
		Message: "Erreur serveur interne",
	})
}
