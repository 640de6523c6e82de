package validation

import (
	"strings"

	"Backend-SchoolAdmin/src/models"
)

// StudentRules กติกาสำหรับแบบฟอร์มสมัครเรียน (ข้อความเป็นภาษาฝรั่งเศสตามหน้าเว็บ)
var StudentRules = []Rule{
	{Field: "prenom", Tag: "required", Message: "Le prénom est requis"},
	{Field: "nom", Tag: "required", Message: "Le nom est requis"},
	{Field: "email", Tag: "required,email", Message: "Email invalide"},
	{Field: "telephone", Tag: "required", Message: "Le téléphone est requis"},
	{Field: "dateNaissance", Tag: "required,datetime=2006-01-02", Message: "Date de naissance invalide"},
	{Field: "genre", Tag: "oneof=masculin feminin", Message: "Genre invalide"},
	{Field: "niveau", Tag: "oneof=maternelle primaire college lycee", Message: "Niveau invalide"},
	{Field: "classe", Tag: "oneof=" + strings.Join(models.Classes, " "), Message: "Classe invalide"},
	{Field: "adresse", Tag: "required", Message: "L'adresse est requise"},
	{Field: "ville", Tag: "required", Message: "La ville est requise"},
	{Field: "codePostal", Tag: "required", Message: "Le code postal est requis"},
	{Field: "nomParent", Tag: "required", Message: "Le nom du parent est requis"},
	{Field: "telephoneParent", Tag: "required", Message: "Le téléphone du parent est requis"},
}

// JobApplicationRules กติกาสำหรับแบบฟอร์มสมัครงาน
var JobApplicationRules = []Rule{
	{Field: "nom", Tag: "required", Message: "Le nom est requis"},
	{Field: "prenom", Tag: "required", Message: "Le prénom est requis"},
	{Field: "email", Tag: "required,email", Message: "Email invalide"},
	{Field: "posteSouhaite", Tag: "required", Message: "Le poste souhaité est requis"},
	{Field: "messageMotivation", Tag: "required", Message: "Le message de motivation est requis"},
}
