package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudentStatus สถานะของใบสมัครนักเรียน
type StudentStatus string

const (
	StudentStatusPending  StudentStatus = "en_attente"
	StudentStatusAccepted StudentStatus = "accepte"
	StudentStatusRejected StudentStatus = "refuse"
)

// Valid ตรวจว่าค่าสถานะอยู่ในชุดที่อนุญาต
func (s StudentStatus) Valid() bool {
	switch s {
	case StudentStatusPending, StudentStatusAccepted, StudentStatusRejected:
		return true
	}
	return false
}

// Gender เพศ (ตามแบบฟอร์มภาษาฝรั่งเศส)
type Gender string

const (
	GenderMale   Gender = "masculin"
	GenderFemale Gender = "feminin"
)

// Level ระดับชั้น: อนุบาล ประถม มัธยมต้น มัธยมปลาย
type Level string

const (
	LevelKindergarten Level = "maternelle"
	LevelPrimary      Level = "primaire"
	LevelMiddle       Level = "college"
	LevelHigh         Level = "lycee"
)

// Classes ห้องเรียนทั้งหมดที่เปิดรับสมัคร
var Classes = []string{
	"cp", "ce1", "ce2", "cm1", "cm2",
	"6eme", "5eme", "4eme", "3eme",
	"seconde", "premiere", "terminale",
}

// Student ใบสมัครเรียนหนึ่งรายการ — email ต้องไม่ซ้ำ (unique index)
type Student struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// Informations personnelles
	Prenom        string `bson:"prenom" json:"prenom"`
	Nom           string `bson:"nom" json:"nom"`
	Email         string `bson:"email" json:"email"`
	Telephone     string `bson:"telephone" json:"telephone"`
	DateNaissance string `bson:"dateNaissance" json:"dateNaissance"`
	Genre         Gender `bson:"genre" json:"genre"`

	// Informations scolaires
	Niveau Level  `bson:"niveau" json:"niveau"`
	Classe string `bson:"classe" json:"classe"`

	// Adresse
	Adresse    string `bson:"adresse" json:"adresse"`
	Ville      string `bson:"ville" json:"ville"`
	CodePostal string `bson:"codePostal" json:"codePostal"`

	// Parent / tuteur
	NomParent       string `bson:"nomParent" json:"nomParent"`
	TelephoneParent string `bson:"telephoneParent" json:"telephoneParent"`
	EmailParent     string `bson:"emailParent,omitempty" json:"emailParent,omitempty"`

	// Métadonnées
	DateInscription time.Time     `bson:"dateInscription" json:"dateInscription"`
	Statut          StudentStatus `bson:"statut" json:"statut"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// StudentCreated ส่วนที่ตอบกลับหลังสมัครสำเร็จ
type StudentCreated struct {
	ID     primitive.ObjectID `json:"id"`
	Nom    string             `json:"nom"`
	Prenom string             `json:"prenom"`
	Email  string             `json:"email"`
	Statut StudentStatus      `json:"statut"`
}

// StudentFilter ตัวกรองรายการนักเรียน (exact match เท่านั้น ช่องว่างไม่กรอง)
type StudentFilter struct {
	Niveau string
	Classe string
	Statut string
}
