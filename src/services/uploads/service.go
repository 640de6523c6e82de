package uploads

import (
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"Backend-SchoolAdmin/src/utils"

	"github.com/google/uuid"
)

// MaxResumeSize ขนาดไฟล์ CV สูงสุด 5MB
const MaxResumeSize = 5 * 1024 * 1024

// allowedExtensions นามสกุลไฟล์ CV ที่รับ
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// Service จัดเก็บไฟล์ที่อัปโหลดลงดิสก์ และคืน path สำหรับเรียกดูภายหลัง
type Service struct {
	Dir string // เช่น uploads/cv
}

func NewService(dir string) *Service {
	return &Service{Dir: dir}
}

// CheckResume ตรวจนโยบายไฟล์ก่อนเขียนอะไรทั้งสิ้น
func (s *Service) CheckResume(file *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return utils.FileRejected("Format de fichier non autorisé. Utilisez PDF, DOC ou DOCX")
	}
	if file.Size > MaxResumeSize {
		return utils.FileRejected("Le fichier dépasse la taille maximale de 5 Mo")
	}
	return nil
}

// StoreResume บันทึกไฟล์ CV และคืน path ของไฟล์ที่เก็บไว้
// ตั้งชื่อใหม่ทุกครั้ง กันชนกับไฟล์ของผู้สมัครคนอื่น
func (s *Service) StoreResume(file *multipart.FileHeader) (string, error) {
	if err := s.CheckResume(file); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := "cv-" + uuid.NewString() + ext
	dest := filepath.Join(s.Dir, name)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dest)
		return "", err
	}

	return dest, nil
}

// Remove ลบไฟล์ที่เก็บไว้ — best effort ผู้เรียก log เอง
func (s *Service) Remove(path string) error {
	if path == "" {
		return nil
	}
	err := os.Remove(path)
	if os.IsNotExist(err) {
		log.Println("⚠️ Fichier CV déjà absent:", path)
		return nil
	}
	return err
}
