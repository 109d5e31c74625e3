package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Sylvio143/G-stagiaire/internal/dto"
	"github.com/Sylvio143/G-stagiaire/internal/model"
	"github.com/Sylvio143/G-stagiaire/internal/service"
	"github.com/Sylvio143/G-stagiaire/pkg/response"
)

// EncadreurHandler serves the /encadreurs routes.
type EncadreurHandler struct {
	encSvc service.EncadreurService
}

// NewEncadreurHandler creates the EncadreurHandler.
func NewEncadreurHandler(encSvc service.EncadreurService) *EncadreurHandler {
	return &EncadreurHandler{encSvc: encSvc}
}

// List GET /api/encadreurs
func (h *EncadreurHandler) List(c *gin.Context) {
	encs, err := h.encSvc.ListActifs(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, encs)
}

// ListAll GET /api/encadreurs/tous
func (h *EncadreurHandler) ListAll(c *gin.Context) {
	encs, err := h.encSvc.ListAll(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, encs)
}

// ListInactifs GET /api/encadreurs/inactifs
func (h *EncadreurHandler) ListInactifs(c *gin.Context) {
	encs, err := h.encSvc.ListByStatut(c.Request.Context(), model.StatutInactif)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, encs)
}

// ListByStatut GET /api/encadreurs/statut/:statut
func (h *EncadreurHandler) ListByStatut(c *gin.Context) {
	statut := model.Statut(c.Param("statut"))
	if statut != model.StatutActif && statut != model.StatutInactif {
		response.BadRequest(c, 10001, "statut invalide")
		return
	}
	encs, err := h.encSvc.ListByStatut(c.Request.Context(), statut)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, encs)
}

// ListBySuperieur GET /api/encadreurs/superieur/:documentId
func (h *EncadreurHandler) ListBySuperieur(c *gin.Context) {
	encs, err := h.encSvc.ListBySuperieur(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, encs)
}

// ListByDepartement GET /api/encadreurs/departement/:departement
func (h *EncadreurHandler) ListByDepartement(c *gin.Context) {
	encs, err := h.encSvc.ListByDepartement(c.Request.Context(), c.Param("departement"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, encs)
}

// ListWithSuperieur GET /api/encadreurs/with-superieur
func (h *EncadreurHandler) ListWithSuperieur(c *gin.Context) {
	encs, err := h.encSvc.ListWithSuperieur(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, encs)
}

// Get GET /api/encadreurs/:documentId
func (h *EncadreurHandler) Get(c *gin.Context) {
	enc, err := h.encSvc.GetByDocumentID(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, enc)
}

// GetByEmail GET /api/encadreurs/email/:email
func (h *EncadreurHandler) GetByEmail(c *gin.Context) {
	enc, err := h.encSvc.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, enc)
}

// CheckEmail GET /api/encadreurs/check-email/:email
func (h *EncadreurHandler) CheckEmail(c *gin.Context) {
	exists, err := h.encSvc.ExistsByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"exists": exists})
}

// CheckCin GET /api/encadreurs/check-cin/:cin
func (h *EncadreurHandler) CheckCin(c *gin.Context) {
	exists, err := h.encSvc.ExistsByCin(c.Request.Context(), c.Param("cin"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"exists": exists})
}

// Create POST /api/encadreurs
func (h *EncadreurHandler) Create(c *gin.Context) {
	var req dto.CreateEncadreurRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}
	enc, err := h.encSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, enc)
}

// Update PUT /api/encadreurs/:documentId
func (h *EncadreurHandler) Update(c *gin.Context) {
	var req dto.UpdateEncadreurRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}
	enc, err := h.encSvc.Update(c.Request.Context(), c.Param("documentId"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, enc)
}

// SetPhoto PUT /api/encadreurs/:documentId/photo/:mediaId
func (h *EncadreurHandler) SetPhoto(c *gin.Context) {
	enc, err := h.encSvc.SetPhoto(c.Request.Context(), c.Param("documentId"), c.Param("mediaId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, enc)
}

// Desactiver PUT /api/encadreurs/:documentId/desactiver
func (h *EncadreurHandler) Desactiver(c *gin.Context) {
	enc, err := h.encSvc.Desactiver(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, enc)
}

// Activer PUT /api/encadreurs/:documentId/activer
func (h *EncadreurHandler) Activer(c *gin.Context) {
	enc, err := h.encSvc.Activer(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, enc)
}

// Delete DELETE /api/encadreurs/:documentId
func (h *EncadreurHandler) Delete(c *gin.Context) {
	if err := h.encSvc.Delete(c.Request.Context(), c.Param("documentId")); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *EncadreurHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEncadreurNotFound):
		response.NotFound(c, 12001, "encadreur introuvable")
	case errors.Is(err, service.ErrEncadreurEmailExists):
		response.Conflict(c, 12002, "email déjà utilisé")
	case errors.Is(err, service.ErrEncadreurCinExists):
		response.Conflict(c, 12003, "CIN déjà utilisé")
	case errors.Is(err, service.ErrSuperieurNotFound):
		response.NotFound(c, 12004, "supérieur hiérarchique introuvable")
	case errors.Is(err, service.ErrMediaNotFound):
		response.NotFound(c, 12005, "fichier média introuvable")
	default:
		response.InternalError(c)
	}
}
