package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sylvio143/G-stagiaire/internal/dto"
	"github.com/Sylvio143/G-stagiaire/internal/service"
	"github.com/Sylvio143/G-stagiaire/pkg/response"
)

// TacheHandler serves the /taches routes.
type TacheHandler struct {
	tacheSvc service.TacheService
}

// NewTacheHandler creates the TacheHandler.
func NewTacheHandler(tacheSvc service.TacheService) *TacheHandler {
	return &TacheHandler{tacheSvc: tacheSvc}
}

// List GET /api/taches
func (h *TacheHandler) List(c *gin.Context) {
	taches, err := h.tacheSvc.ListAll(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, taches)
}

// ListByStage GET /api/taches/stage/:documentId
func (h *TacheHandler) ListByStage(c *gin.Context) {
	taches, err := h.tacheSvc.ListByStage(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, taches)
}

// ListByStatut GET /api/taches/statut/:statut
func (h *TacheHandler) ListByStatut(c *gin.Context) {
	taches, err := h.tacheSvc.ListByStatut(c.Request.Context(), c.Param("statut"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, taches)
}

// ListByStageAndStatut GET /api/taches/stage/:documentId/statut/:statut
func (h *TacheHandler) ListByStageAndStatut(c *gin.Context) {
	taches, err := h.tacheSvc.ListByStageAndStatut(c.Request.Context(), c.Param("documentId"), c.Param("statut"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, taches)
}

// ListEnRetard GET /api/taches/en-retard
func (h *TacheHandler) ListEnRetard(c *gin.Context) {
	taches, err := h.tacheSvc.ListEnRetard(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, taches)
}

// Get GET /api/taches/:documentId
func (h *TacheHandler) Get(c *gin.Context) {
	tache, err := h.tacheSvc.GetByDocumentID(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, tache)
}

// Create POST /api/taches
func (h *TacheHandler) Create(c *gin.Context) {
	var req dto.CreateTacheRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}
	tache, err := h.tacheSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, tache)
}

// Update PUT /api/taches/:documentId
func (h *TacheHandler) Update(c *gin.Context) {
	var req dto.UpdateTacheRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}
	tache, err := h.tacheSvc.Update(c.Request.Context(), c.Param("documentId"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, tache)
}

// UpdateStatut PUT /api/taches/:documentId/statut/:statut
func (h *TacheHandler) UpdateStatut(c *gin.Context) {
	tache, err := h.tacheSvc.UpdateStatut(c.Request.Context(), c.Param("documentId"), c.Param("statut"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, tache)
}

// UpdatePriorite PUT /api/taches/:documentId/priorite/:priorite
func (h *TacheHandler) UpdatePriorite(c *gin.Context) {
	priorite, err := strconv.Atoi(c.Param("priorite"))
	if err != nil {
		response.BadRequest(c, 10001, "priorité invalide")
		return
	}
	tache, err := h.tacheSvc.UpdatePriorite(c.Request.Context(), c.Param("documentId"), priorite)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, tache)
}

// Delete DELETE /api/taches/:documentId
func (h *TacheHandler) Delete(c *gin.Context) {
	if err := h.tacheSvc.Delete(c.Request.Context(), c.Param("documentId")); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *TacheHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTacheNotFound):
		response.NotFound(c, 16001, "tâche introuvable")
	case errors.Is(err, service.ErrTacheInvalidStatut):
		response.BadRequest(c, 16002, "statut de tâche invalide")
	case errors.Is(err, service.ErrTacheInvalidPriorite):
		response.BadRequest(c, 16003, "priorité invalide, valeurs admises 1, 2, 3")
	case errors.Is(err, service.ErrStageNotFound):
		response.NotFound(c, 16004, "stage introuvable")
	default:
		response.InternalError(c)
	}
}
