package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Sylvio143/G-stagiaire/internal/dto"
	"github.com/Sylvio143/G-stagiaire/internal/model"
	"github.com/Sylvio143/G-stagiaire/internal/service"
	"github.com/Sylvio143/G-stagiaire/pkg/response"
)

// SuperieurHandler serves the /superieurs-hierarchiques routes.
type SuperieurHandler struct {
	supSvc service.SuperieurService
}

// NewSuperieurHandler creates the SuperieurHandler.
func NewSuperieurHandler(supSvc service.SuperieurService) *SuperieurHandler {
	return &SuperieurHandler{supSvc: supSvc}
}

// List GET /api/superieurs-hierarchiques
func (h *SuperieurHandler) List(c *gin.Context) {
	sups, err := h.supSvc.ListActifs(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, sups)
}

// ListAll GET /api/superieurs-hierarchiques/tous
func (h *SuperieurHandler) ListAll(c *gin.Context) {
	sups, err := h.supSvc.ListAll(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, sups)
}

// ListInactifs GET /api/superieurs-hierarchiques/inactifs
func (h *SuperieurHandler) ListInactifs(c *gin.Context) {
	sups, err := h.supSvc.ListByStatut(c.Request.Context(), model.StatutInactif)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, sups)
}

// ListByStatut GET /api/superieurs-hierarchiques/statut/:statut
func (h *SuperieurHandler) ListByStatut(c *gin.Context) {
	statut := model.Statut(c.Param("statut"))
	if statut != model.StatutActif && statut != model.StatutInactif {
		response.BadRequest(c, 10001, "statut invalide")
		return
	}
	sups, err := h.supSvc.ListByStatut(c.Request.Context(), statut)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, sups)
}

// ListByDepartement GET /api/superieurs-hierarchiques/departement/:departement
func (h *SuperieurHandler) ListByDepartement(c *gin.Context) {
	sups, err := h.supSvc.ListByDepartement(c.Request.Context(), c.Param("departement"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, sups)
}

// ListWithPhoto GET /api/superieurs-hierarchiques/with-photo
func (h *SuperieurHandler) ListWithPhoto(c *gin.Context) {
	sups, err := h.supSvc.ListWithPhoto(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, sups)
}

// Count GET /api/superieurs-hierarchiques/stats/count
func (h *SuperieurHandler) Count(c *gin.Context) {
	count, err := h.supSvc.Count(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, dto.CountResponse{Count: count})
}

// CountByDepartement GET /api/superieurs-hierarchiques/stats/departement/:departement/count
func (h *SuperieurHandler) CountByDepartement(c *gin.Context) {
	count, err := h.supSvc.CountByDepartement(c.Request.Context(), c.Param("departement"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, dto.CountResponse{Count: count})
}

// Get GET /api/superieurs-hierarchiques/:documentId
func (h *SuperieurHandler) Get(c *gin.Context) {
	sup, err := h.supSvc.GetByDocumentID(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, sup)
}

// GetByEmail GET /api/superieurs-hierarchiques/email/:email
func (h *SuperieurHandler) GetByEmail(c *gin.Context) {
	sup, err := h.supSvc.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, sup)
}

// CheckEmail GET /api/superieurs-hierarchiques/check-email/:email
func (h *SuperieurHandler) CheckEmail(c *gin.Context) {
	exists, err := h.supSvc.ExistsByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"exists": exists})
}

// CheckCin GET /api/superieurs-hierarchiques/check-cin/:cin
func (h *SuperieurHandler) CheckCin(c *gin.Context) {
	exists, err := h.supSvc.ExistsByCin(c.Request.Context(), c.Param("cin"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"exists": exists})
}

// Create POST /api/superieurs-hierarchiques
func (h *SuperieurHandler) Create(c *gin.Context) {
	var req dto.CreateSuperieurRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}
	sup, err := h.supSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, sup)
}

// Update PUT /api/superieurs-hierarchiques/:documentId
func (h *SuperieurHandler) Update(c *gin.Context) {
	var req dto.UpdateSuperieurRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}
	sup, err := h.supSvc.Update(c.Request.Context(), c.Param("documentId"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, sup)
}

// SetPhoto PUT /api/superieurs-hierarchiques/:documentId/photo/:mediaId
func (h *SuperieurHandler) SetPhoto(c *gin.Context) {
	sup, err := h.supSvc.SetPhoto(c.Request.Context(), c.Param("documentId"), c.Param("mediaId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, sup)
}

// Desactiver PUT /api/superieurs-hierarchiques/:documentId/desactiver
func (h *SuperieurHandler) Desactiver(c *gin.Context) {
	sup, err := h.supSvc.Desactiver(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, sup)
}

// Activer PUT /api/superieurs-hierarchiques/:documentId/activer
func (h *SuperieurHandler) Activer(c *gin.Context) {
	sup, err := h.supSvc.Activer(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, sup)
}

// Delete DELETE /api/superieurs-hierarchiques/:documentId
func (h *SuperieurHandler) Delete(c *gin.Context) {
	if err := h.supSvc.Delete(c.Request.Context(), c.Param("documentId")); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *SuperieurHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSuperieurNotFound):
		response.NotFound(c, 14001, "supérieur hiérarchique introuvable")
	case errors.Is(err, service.ErrSuperieurEmailExists):
		response.Conflict(c, 14002, "email déjà utilisé")
	case errors.Is(err, service.ErrSuperieurCinExists):
		response.Conflict(c, 14003, "CIN déjà utilisé")
	case errors.Is(err, service.ErrMediaNotFound):
		response.NotFound(c, 14004, "fichier média introuvable")
	default:
		response.InternalError(c)
	}
}
