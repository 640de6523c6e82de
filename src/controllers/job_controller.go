package controllers

import (
	"strconv"
	"strings"

	"Backend-SchoolAdmin/src/models"
	"Backend-SchoolAdmin/src/services/applications"
	"Backend-SchoolAdmin/src/services/uploads"
	"Backend-SchoolAdmin/src/utils"
	"Backend-SchoolAdmin/src/validation"

	"github.com/gofiber/fiber/v2"
)

// JobController จัดการ endpoint /api/jobs
type JobController struct {
	service *applications.Service
	uploads *uploads.Service
}

func NewJobController(service *applications.Service, up *uploads.Service) *JobController {
	return &JobController{service: service, uploads: up}
}

type jobApplicationForm struct {
	Nom               string `json:"nom" form:"nom"`
	Prenom            string `json:"prenom" form:"prenom"`
	Email             string `json:"email" form:"email"`
	Telephone         string `json:"telephone" form:"telephone"`
	PosteSouhaite     string `json:"posteSouhaite" form:"posteSouhaite"`
	MessageMotivation string `json:"messageMotivation" form:"messageMotivation"`
}

func (f *jobApplicationForm) toInput() map[string]string {
	return map[string]string{
		"nom":               strings.TrimSpace(f.Nom),
		"prenom":            strings.TrimSpace(f.Prenom),
		"email":             strings.TrimSpace(f.Email),
		"posteSouhaite":     strings.TrimSpace(f.PosteSouhaite),
		"messageMotivation": strings.TrimSpace(f.MessageMotivation),
	}
}

// Create godoc
// @Summary      Soumettre une candidature
// @Description  Candidature multipart avec fichier CV optionnel (champ "cv")
// @Tags         jobs
// @Accept       multipart/form-data
// @Produce      json
// @Param        nom formData string true "Nom"
// @Param        prenom formData string true "Prénom"
// @Param        email formData string true "Email"
// @Param        telephone formData string false "Téléphone"
// @Param        posteSouhaite formData string true "Poste souhaité"
// @Param        messageMotivation formData string true "Message de motivation"
// @Param        cv formData file false "CV (PDF, DOC ou DOCX, max 5 Mo)"
// @Success      201 {object} models.SuccessResponse
// @Failure      400 {object} models.ErrorResponse
// @Router       /jobs [post]
func (ctl *JobController) Create(c *fiber.Ctx) error {
	var form jobApplicationForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Success: false,
			Message: "Requête invalide : corps vide ou mal formé",
		})
	}

	input := form.toInput()
	if violations := validation.Run(validation.JobApplicationRules, input); len(violations) > 0 {
		return utils.RespondError(c, utils.ValidationFailed(violations))
	}

	// ไฟล์ CV เป็น optional — ถ้าแนบมาต้องผ่านนโยบายก่อนสร้าง record
	cvPath := ""
	if file, err := c.FormFile("cv"); err == nil && file != nil {
		cvPath, err = ctl.uploads.StoreResume(file)
		if err != nil {
			return utils.RespondError(c, err)
		}
	}

	application := models.JobApplication{
		Nom:               input["nom"],
		Prenom:            input["prenom"],
		Email:             strings.ToLower(input["email"]),
		Telephone:         strings.TrimSpace(form.Telephone),
		PosteSouhaite:     input["posteSouhaite"],
		MessageMotivation: input["messageMotivation"],
		CVPath:            cvPath,
	}

	if err := ctl.service.Create(&application); err != nil {
		// insert พัง ลบไฟล์ที่เพิ่งเก็บไว้ทิ้ง ไม่ให้ค้างเป็นไฟล์กำพร้า
		if cvPath != "" {
			ctl.uploads.Remove(cvPath)
		}
		return utils.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse{
		Success: true,
		Message: "Candidature soumise avec succès !",
		Data: models.ApplicationCreated{
			ID:              application.ID,
			Nom:             application.Nom,
			Prenom:          application.Prenom,
			Email:           application.Email,
			PosteSouhaite:   application.PosteSouhaite,
			Statut:          application.Statut,
			DateCandidature: application.DateCandidature,
		},
	})
}

// List godoc
// @Summary      Lister les candidatures
// @Description  Liste paginée, filtre statut exact et poste souhaité en sous-chaîne
// @Tags         jobs
// @Produce      json
// @Param        page query int false "Numéro de page"
// @Param        limit query int false "Taille de page"
// @Param        statut query string false "Filtre statut"
// @Param        posteSouhaite query string false "Recherche poste (insensible à la casse)"
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} models.ErrorResponse
// @Router       /jobs [get]
func (ctl *JobController) List(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Normalize()

	filter := models.ApplicationFilter{
		Statut:        c.Query("statut"),
		PosteSouhaite: c.Query("posteSouhaite"),
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
// @Summary      Récupérer une candidature
// @Tags         jobs
// @Produce      json
// @Param        id path string true "ID de la candidature"
// @Success      200 {object} models.SuccessResponse
// @Failure      404 {object} models.ErrorResponse
// @Router       /jobs/{id} [get]
func (ctl *JobController) GetByID(c *fiber.Ctx) error {
	application, err := ctl.service.GetByID(c.Params("id"))
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.JSON(models.SuccessResponse{Success: true, Data: application})
}

// UpdateStatus godoc
// @Summary      Mettre à jour le statut d'une candidature
// @Description  Statut parmi soumise, en_cours, acceptee, refusee — commentaireRH optionnel
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path string true "ID de la candidature"
// @Param        body body object true "{statut, commentaireRH}"
// @Success      200 {object} models.SuccessResponse
// @Failure      400 {object} models.ErrorResponse
// @Failure      404 {object} models.ErrorResponse
// @Router       /jobs/{id}/status [put]
func (ctl *JobController) UpdateStatus(c *fiber.Ctx) error {
	var req struct {
		Statut        string `json:"statut"`
		CommentaireRH string `json:"commentaireRH"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Success: false,
			Message: "Requête invalide : corps vide ou mal formé",
		})
	}

	application, err := ctl.service.UpdateStatus(c.Params("id"), req.Statut, req.CommentaireRH)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.JSON(models.SuccessResponse{
		Success: true,
		Message: "Statut mis à jour avec succès",
		Data:    application,
	})
}

// Delete godoc
// @Summary      Supprimer une candidature
// @Description  Supprime la candidature puis le fichier CV en tâche de fond
// @Tags         jobs
// @Produce      json
// @Param        id path string true "ID de la candidature"
// @Success      200 {object} models.SuccessResponse
// @Failure      404 {object} models.ErrorResponse
// @Router       /jobs/{id} [delete]
func (ctl *JobController) Delete(c *fiber.Ctx) error {
	if err := ctl.service.Delete(c.Params("id")); err != nil {
		return utils.RespondError(c, err)
	}

	return c.JSON(models.SuccessResponse{
		Success: true,
		Message: "Candidature supprimée avec succès",
	})
}

// Stats godoc
// @Summary      Statistiques des candidatures
// @Description  Total, candidatures du mois courant et répartition par statut
// @Tags         jobs
// @Produce      json
// @Success      200 {object} models.SuccessResponse
// @Failure      500 {object} models.ErrorResponse
// @Router       /jobs/stats/overview [get]
func (ctl *JobController) Stats(c *fiber.Ctx) error {
	stats, err := ctl.service.Stats()
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.JSON(models.SuccessResponse{Success: true, Data: stats})
}
