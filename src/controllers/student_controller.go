package controllers

import (
	"strconv"
	"strings"

	"Backend-SchoolAdmin/src/models"
	"Backend-SchoolAdmin/src/services/students"
	"Backend-SchoolAdmin/src/utils"
	"Backend-SchoolAdmin/src/validation"

	"github.com/gofiber/fiber/v2"
)

// StudentController จัดการ endpoint /api/students
type StudentController struct {
	service *students.Service
}

func NewStudentController(service *students.Service) *StudentController {
	return &StudentController{service: service}
}

type studentForm struct {
	Prenom          string `json:"prenom" form:"prenom"`
	Nom             string `json:"nom" form:"nom"`
	Email           string `json:"email" form:"email"`
	Telephone       string `json:"telephone" form:"telephone"`
	DateNaissance   string `json:"dateNaissance" form:"dateNaissance"`
	Genre           string `json:"genre" form:"genre"`
	Niveau          string `json:"niveau" form:"niveau"`
	Classe          string `json:"classe" form:"classe"`
	Adresse         string `json:"adresse" form:"adresse"`
	Ville           string `json:"ville" form:"ville"`
	CodePostal      string `json:"codePostal" form:"codePostal"`
	NomParent       string `json:"nomParent" form:"nomParent"`
	TelephoneParent string `json:"telephoneParent" form:"telephoneParent"`
	EmailParent     string `json:"emailParent" form:"emailParent"`
}

// toInput map สำหรับ validation pipeline (trim เผื่อ body เป็น form)
func (f *studentForm) toInput() map[string]string {
	return map[string]string{
		"prenom":          strings.TrimSpace(f.Prenom),
		"nom":             strings.TrimSpace(f.Nom),
		"email":           strings.TrimSpace(f.Email),
		"telephone":       strings.TrimSpace(f.Telephone),
		"dateNaissance":   strings.TrimSpace(f.DateNaissance),
		"genre":           strings.TrimSpace(f.Genre),
		"niveau":          strings.TrimSpace(f.Niveau),
		"classe":          strings.TrimSpace(f.Classe),
		"adresse":         strings.TrimSpace(f.Adresse),
		"ville":           strings.TrimSpace(f.Ville),
		"codePostal":      strings.TrimSpace(f.CodePostal),
		"nomParent":       strings.TrimSpace(f.NomParent),
		"telephoneParent": strings.TrimSpace(f.TelephoneParent),
	}
}

// Create godoc
// @Summary      Créer une inscription
// @Description  Enregistre une nouvelle inscription d'étudiant
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        student body studentForm true "Champs d'inscription"
// @Success      201 {object} models.SuccessResponse
// @Failure      400 {object} models.ErrorResponse
// @Router       /students [post]
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var form studentForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Success: false,
			Message: "Requête invalide : corps vide ou mal formé",
		})
	}

	input := form.toInput()
	if violations := validation.Run(validation.StudentRules, input); len(violations) > 0 {
		return utils.RespondError(c, utils.ValidationFailed(violations))
	}

	student := models.Student{
		Prenom:          input["prenom"],
		Nom:             input["nom"],
		Email:           strings.ToLower(input["email"]),
		Telephone:       input["telephone"],
		DateNaissance:   input["dateNaissance"],
		Genre:           models.Gender(input["genre"]),
		Niveau:          models.Level(input["niveau"]),
		Classe:          input["classe"],
		Adresse:         input["adresse"],
		Ville:           input["ville"],
		CodePostal:      input["codePostal"],
		NomParent:       input["nomParent"],
		TelephoneParent: input["telephoneParent"],
		EmailParent:     strings.ToLower(strings.TrimSpace(form.EmailParent)),
	}

	if err := ctl.service.Create(&student); err != nil {
		return utils.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse{
		Success: true,
		Message: "Inscription réussie !",
		Data: models.StudentCreated{
			ID:     student.ID,
			Nom:    student.Nom,
			Prenom: student.Prenom,
			Email:  student.Email,
			Statut: student.Statut,
		},
	})
}

// List godoc
// @Summary      Lister les étudiants
// @Description  Liste paginée avec filtres niveau, classe et statut
// @Tags         students
// @Produce      json
// @Param        page query int false "Numéro de page"
// @Param        limit query int false "Taille de page"
// @Param        niveau query string false "Filtre niveau"
// @Param        classe query string false "Filtre classe"
// @Param        statut query string false "Filtre statut"
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} models.ErrorResponse
// @Router       /students [get]
func (ctl *StudentController) List(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Normalize()

	filter := models.StudentFilter{
		Niveau: c.Query("niveau"),
		Classe: c.Query("classe"),
		Statut: c.Query("statut"),
	}

	list, meta, err := ctl.service.List(filter, params)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       list,
		"pagination": meta,
	})
}

// GetByID godoc
// @Summary      Récupérer un étudiant
// @Tags         students
// @Produce      json
// @Param        id path string true "ID de l'étudiant"
// @Success      200 {object} models.SuccessResponse
// @Failure      404 {object} models.ErrorResponse
// @Router       /students/{id} [get]
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	student, err := ctl.service.GetByID(c.Params("id"))
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.JSON(models.SuccessResponse{Success: true, Data: student})
}

// UpdateStatus godoc
// @Summary      Mettre à jour le statut
// @Description  Statut parmi en_attente, accepte, refuse
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        id path string true "ID de l'étudiant"
// @Param        body body object true "{statut}"
// @Success      200 {object} models.SuccessResponse
// @Failure      400 {object} models.ErrorResponse
// @Failure      404 {object} models.ErrorResponse
// @Router       /students/{id}/status [put]
func (ctl *StudentController) UpdateStatus(c *fiber.Ctx) error {
	var req struct {
		Statut string `json:"statut"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Success: false,
			Message: "Requête invalide : corps vide ou mal formé",
		})
	}

	student, err := ctl.service.UpdateStatus(c.Params("id"), req.Statut)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.JSON(models.SuccessResponse{
		Success: true,
		Message: "Statut mis à jour avec succès",
		Data:    student,
	})
}

// Delete godoc
// @Summary      Supprimer un étudiant
// @Tags         students
// @Produce      json
// @Param        id path string true "ID de l'étudiant"
// @Success      200 {object} models.SuccessResponse
// @Failure      404 {object} models.ErrorResponse
// @Router       /students/{id} [delete]
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	if err := ctl.service.Delete(c.Params("id")); err != nil {
		return utils.RespondError(c, err)
	}

	return c.JSON(models.SuccessResponse{
		Success: true,
		Message: "Étudiant supprimé avec succès",
	})
}
