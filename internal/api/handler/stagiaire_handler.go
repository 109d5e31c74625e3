package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Sylvio143/G-stagiaire/internal/dto"
	"github.com/Sylvio143/G-stagiaire/internal/model"
	"github.com/Sylvio143/G-stagiaire/internal/service"
	"github.com/Sylvio143/G-stagiaire/pkg/response"
)

// StagiaireHandler serves the /stagiaires routes.
type StagiaireHandler struct {
	stSvc service.StagiaireService
}

// NewStagiaireHandler creates the StagiaireHandler.
func NewStagiaireHandler(stSvc service.StagiaireService) *StagiaireHandler {
	return &StagiaireHandler{stSvc: stSvc}
}

// List GET /api/stagiaires
func (h *StagiaireHandler) List(c *gin.Context) {
	sts, err := h.stSvc.ListActifs(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, sts)
}

// ListAll GET /api/stagiaires/tous
func (h *StagiaireHandler) ListAll(c *gin.Context) {
	sts, err := h.stSvc.ListAll(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, sts)
}

// ListInactifs GET /api/stagiaires/inactifs
func (h *StagiaireHandler) ListInactifs(c *gin.Context) {
	sts, err := h.stSvc.ListByStatut(c.Request.Context(), model.StatutInactif)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, sts)
}

// ListByStatut GET /api/stagiaires/statut/:statut
func (h *StagiaireHandler) ListByStatut(c *gin.Context) {
	statut := model.Statut(c.Param("statut"))
	if statut != model.StatutActif && statut != model.StatutInactif {
		response.BadRequest(c, 10001, "statut invalide")
		return
	}
	sts, err := h.stSvc.ListByStatut(c.Request.Context(), statut)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, sts)
}

// ListByEncadreur GET /api/stagiaires/encadreur/:documentId
func (h *StagiaireHandler) ListByEncadreur(c *gin.Context) {
	sts, err := h.stSvc.ListByEncadreur(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, sts)
}

// ListByEcole GET /api/stagiaires/ecole/:ecole
func (h *StagiaireHandler) ListByEcole(c *gin.Context) {
	sts, err := h.stSvc.ListByEcole(c.Request.Context(), c.Param("ecole"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, sts)
}

// ListByFiliere GET /api/stagiaires/filiere/:filiere
func (h *StagiaireHandler) ListByFiliere(c *gin.Context) {
	sts, err := h.stSvc.ListByFiliere(c.Request.Context(), c.Param("filiere"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, sts)
}

// ListWithEncadreur GET /api/stagiaires/with-encadreur
func (h *StagiaireHandler) ListWithEncadreur(c *gin.Context) {
	sts, err := h.stSvc.ListWithEncadreur(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, sts)
}

// HasActiveStage GET /api/stagiaires/:documentId/has-active-stage
func (h *StagiaireHandler) HasActiveStage(c *gin.Context) {
	result, err := h.stSvc.HasActiveStage(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

// Get GET /api/stagiaires/:documentId
func (h *StagiaireHandler) Get(c *gin.Context) {
	st, err := h.stSvc.GetByDocumentID(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, st)
}

// GetByEmail GET /api/stagiaires/email/:email
func (h *StagiaireHandler) GetByEmail(c *gin.Context) {
	st, err := h.stSvc.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, st)
}

// CheckEmail GET /api/stagiaires/check-email/:email
func (h *StagiaireHandler) CheckEmail(c *gin.Context) {
	exists, err := h.stSvc.ExistsByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"exists": exists})
}

// CheckCin GET /api/stagiaires/check-cin/:cin
func (h *StagiaireHandler) CheckCin(c *gin.Context) {
	exists, err := h.stSvc.ExistsByCin(c.Request.Context(), c.Param("cin"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"exists": exists})
}

// Create POST /api/stagiaires
func (h *StagiaireHandler) Create(c *gin.Context) {
	var req dto.CreateStagiaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}
	st, err := h.stSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, st)
}

// Update PUT /api/stagiaires/:documentId
func (h *StagiaireHandler) Update(c *gin.Context) {
	var req dto.UpdateStagiaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}
	st, err := h.stSvc.Update(c.Request.Context(), c.Param("documentId"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, st)
}

// SetPhoto PUT /api/stagiaires/:documentId/photo/:mediaId
func (h *StagiaireHandler) SetPhoto(c *gin.Context) {
	st, err := h.stSvc.SetPhoto(c.Request.Context(), c.Param("documentId"), c.Param("mediaId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, st)
}

// Desactiver PUT /api/stagiaires/:documentId/desactiver
func (h *StagiaireHandler) Desactiver(c *gin.Context) {
	st, err := h.stSvc.Desactiver(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, st)
}

// Activer PUT /api/stagiaires/:documentId/activer
func (h *StagiaireHandler) Activer(c *gin.Context) {
	st, err := h.stSvc.Activer(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, st)
}

// Delete DELETE /api/stagiaires/:documentId
func (h *StagiaireHandler) Delete(c *gin.Context) {
	if err := h.stSvc.Delete(c.Request.Context(), c.Param("documentId")); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *StagiaireHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStagiaireNotFound):
		response.NotFound(c, 13001, "stagiaire introuvable")
	case errors.Is(err, service.ErrStagiaireEmailExists):
		response.Conflict(c, 13002, "email déjà utilisé")
	case errors.Is(err, service.ErrStagiaireCinExists):
		response.Conflict(c, 13003, "CIN déjà utilisé")
	case errors.Is(err, service.ErrEncadreurNotFound):
		response.NotFound(c, 13004, "encadreur introuvable")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 13005, "date invalide, format attendu AAAA-MM-JJ")
	case errors.Is(err, service.ErrMediaNotFound):
		response.NotFound(c, 13006, "fichier média introuvable")
	default:
		response.InternalError(c)
	}
}
