package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplicationStatus สถานะของใบสมัครงาน
type ApplicationStatus string

const (
	ApplicationStatusSubmitted ApplicationStatus = "soumise"
	ApplicationStatusInReview  ApplicationStatus = "en_cours"
	ApplicationStatusAccepted  ApplicationStatus = "acceptee"
	ApplicationStatusRejected  ApplicationStatus = "refusee"
)

// Valid ตรวจว่าค่าสถานะอยู่ในชุดที่อนุญาต
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusSubmitted, ApplicationStatusInReview,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Final สถานะที่ถือว่า "ตอบกลับแล้ว" — ต้องบันทึก dateReponse
func (s ApplicationStatus) Final() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// JobApplication ใบสมัครงานหนึ่งรายการ สมัครซ้ำด้วย email เดิมได้
type JobApplication struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// Informations personnelles
	Nom       string `bson:"nom" json:"nom"`
	Prenom    string `bson:"prenom" json:"prenom"`
	Email     string `bson:"email" json:"email"`
	Telephone string `bson:"telephone,omitempty" json:"telephone,omitempty"`

	// Candidature
	PosteSouhaite     string `bson:"posteSouhaite" json:"posteSouhaite"`
	MessageMotivation string `bson:"messageMotivation" json:"messageMotivation"`
	CVPath            string `bson:"cvPath,omitempty" json:"cvPath,omitempty"`

	// Métadonnées
	DateCandidature time.Time         `bson:"dateCandidature" json:"dateCandidature"`
	Statut          ApplicationStatus `bson:"statut" json:"statut"`

	// Suivi RH
	DateReponse   *time.Time `bson:"dateReponse,omitempty" json:"dateReponse,omitempty"`
	CommentaireRH string     `bson:"commentaireRH,omitempty" json:"commentaireRH,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ApplicationCreated ส่วนที่ตอบกลับหลังส่งใบสมัครสำเร็จ
type ApplicationCreated struct {
	ID              primitive.ObjectID `json:"id"`
	Nom             string             `json:"nom"`
	Prenom          string             `json:"prenom"`
	Email           string             `json:"email"`
	PosteSouhaite   string             `json:"posteSouhaite"`
	Statut          ApplicationStatus  `json:"statut"`
	DateCandidature time.Time          `json:"dateCandidature"`
}

// ApplicationFilter ตัวกรองรายการใบสมัครงาน
// PosteSouhaite จับคู่แบบ substring ไม่สนตัวพิมพ์
type ApplicationFilter struct {
	Statut        string
	PosteSouhaite string
}

// ApplicationStats สรุปจำนวนใบสมัครงาน
type ApplicationStats struct {
	Total     int64                       `json:"total"`
	ThisMonth int64                       `json:"thisMonth"`
	ByStatus  map[ApplicationStatus]int64 `json:"byStatus"`
}
