package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Sylvio143/G-stagiaire/internal/dto"
	"github.com/Sylvio143/G-stagiaire/internal/service"
	"github.com/Sylvio143/G-stagiaire/pkg/response"
)

// StageHandler serves the /stages routes.
type StageHandler struct {
	stageSvc service.StageService
}

// NewStageHandler creates the StageHandler.
func NewStageHandler(stageSvc service.StageService) *StageHandler {
	return &StageHandler{stageSvc: stageSvc}
}

// List GET /api/stages
func (h *StageHandler) List(c *gin.Context) {
	stages, err := h.stageSvc.ListAll(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, stages)
}

// ListByStatut GET /api/stages/statut/:statut
func (h *StageHandler) ListByStatut(c *gin.Context) {
	stages, err := h.stageSvc.ListByStatut(c.Request.Context(), c.Param("statut"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, stages)
}

// ListByEncadreur GET /api/stages/encadreur/:documentId
func (h *StageHandler) ListByEncadreur(c *gin.Context) {
	stages, err := h.stageSvc.ListByEncadreur(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, stages)
}

// ListBySuperieur GET /api/stages/superieur/:documentId
func (h *StageHandler) ListBySuperieur(c *gin.Context) {
	stages, err := h.stageSvc.ListBySuperieur(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, stages)
}

// ListByStagiaire GET /api/stages/stagiaire/:documentId
func (h *StageHandler) ListByStagiaire(c *gin.Context) {
	stages, err := h.stageSvc.ListByStagiaire(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, stages)
}

// ListWithRelations GET /api/stages/with-relations
func (h *StageHandler) ListWithRelations(c *gin.Context) {
	stages, err := h.stageSvc.ListWithRelations(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, stages)
}

// Get GET /api/stages/:documentId
func (h *StageHandler) Get(c *gin.Context) {
	stage, err := h.stageSvc.GetByDocumentID(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, stage)
}

// Create POST /api/stages
func (h *StageHandler) Create(c *gin.Context) {
	var req dto.CreateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}
	stage, err := h.stageSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, stage)
}

// Update PUT /api/stages/:documentId
func (h *StageHandler) Update(c *gin.Context) {
	var req dto.UpdateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}
	stage, err := h.stageSvc.Update(c.Request.Context(), c.Param("documentId"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, stage)
}

// UpdateStatut PUT /api/stages/:documentId/statut/:statut
func (h *StageHandler) UpdateStatut(c *gin.Context) {
	stage, err := h.stageSvc.UpdateStatut(c.Request.Context(), c.Param("documentId"), c.Param("statut"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, stage)
}

// AddStagiaire POST /api/stages/:documentId/stagiaires/:stagiaireId
func (h *StageHandler) AddStagiaire(c *gin.Context) {
	stage, err := h.stageSvc.AddStagiaire(c.Request.Context(), c.Param("documentId"), c.Param("stagiaireId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, stage)
}

// RemoveStagiaire DELETE /api/stages/:documentId/stagiaires/:stagiaireId
func (h *StageHandler) RemoveStagiaire(c *gin.Context) {
	stage, err := h.stageSvc.RemoveStagiaire(c.Request.Context(), c.Param("documentId"), c.Param("stagiaireId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, stage)
}

// Delete DELETE /api/stages/:documentId
func (h *StageHandler) Delete(c *gin.Context) {
	if err := h.stageSvc.Delete(c.Request.Context(), c.Param("documentId")); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *StageHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStageNotFound):
		response.NotFound(c, 15001, "stage introuvable")
	case errors.Is(err, service.ErrStageInvalidStatut):
		response.BadRequest(c, 15002, "statut de stage invalide")
	case errors.Is(err, service.ErrStageInvalidDates):
		response.BadRequest(c, 15003, "la date de fin doit être postérieure à la date de début")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 15004, "date invalide, format attendu AAAA-MM-JJ")
	case errors.Is(err, service.ErrStagiaireNotFound):
		response.NotFound(c, 15005, "stagiaire introuvable")
	case errors.Is(err, service.ErrEncadreurNotFound):
		response.NotFound(c, 15006, "encadreur introuvable")
	case errors.Is(err, service.ErrSuperieurNotFound):
		response.NotFound(c, 15007, "supérieur hiérarchique introuvable")
	default:
		response.InternalError(c)
	}
}
