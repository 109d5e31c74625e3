package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Sylvio143/G-stagiaire/internal/dto"
	"github.com/Sylvio143/G-stagiaire/internal/model"
	"github.com/Sylvio143/G-stagiaire/internal/service"
	"github.com/Sylvio143/G-stagiaire/pkg/response"
)

// AdminHandler serves the /admins routes.
type AdminHandler struct {
	adminSvc service.AdminService
}

// NewAdminHandler creates the AdminHandler.
func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// List GET /api/admins
func (h *AdminHandler) List(c *gin.Context) {
	admins, err := h.adminSvc.ListActifs(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, admins)
}

// ListAll GET /api/admins/tous
func (h *AdminHandler) ListAll(c *gin.Context) {
	admins, err := h.adminSvc.ListAll(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, admins)
}

// ListInactifs GET /api/admins/inactifs
func (h *AdminHandler) ListInactifs(c *gin.Context) {
	admins, err := h.adminSvc.ListByStatut(c.Request.Context(), model.StatutInactif)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, admins)
}

// ListByStatut GET /api/admins/statut/:statut
func (h *AdminHandler) ListByStatut(c *gin.Context) {
	statut := model.Statut(c.Param("statut"))
	if statut != model.StatutActif && statut != model.StatutInactif {
		response.BadRequest(c, 10001, "statut invalide")
		return
	}
	admins, err := h.adminSvc.ListByStatut(c.Request.Context(), statut)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, admins)
}

// Get GET /api/admins/:documentId
func (h *AdminHandler) Get(c *gin.Context) {
	admin, err := h.adminSvc.GetByDocumentID(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, admin)
}

// GetByEmail GET /api/admins/email/:email
func (h *AdminHandler) GetByEmail(c *gin.Context) {
	admin, err := h.adminSvc.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, admin)
}

// CheckEmail GET /api/admins/check-email/:email
func (h *AdminHandler) CheckEmail(c *gin.Context) {
	exists, err := h.adminSvc.ExistsByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"exists": exists})
}

// CheckCin GET /api/admins/check-cin/:cin
func (h *AdminHandler) CheckCin(c *gin.Context) {
	exists, err := h.adminSvc.ExistsByCin(c.Request.Context(), c.Param("cin"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"exists": exists})
}

// Create POST /api/admins
func (h *AdminHandler) Create(c *gin.Context) {
	var req dto.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}
	admin, err := h.adminSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, admin)
}

// Update PUT /api/admins/:documentId
func (h *AdminHandler) Update(c *gin.Context) {
	var req dto.UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}
	admin, err := h.adminSvc.Update(c.Request.Context(), c.Param("documentId"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, admin)
}

// Desactiver PUT /api/admins/:documentId/desactiver
func (h *AdminHandler) Desactiver(c *gin.Context) {
	admin, err := h.adminSvc.Desactiver(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, admin)
}

// Activer PUT /api/admins/:documentId/activer
func (h *AdminHandler) Activer(c *gin.Context) {
	admin, err := h.adminSvc.Activer(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, admin)
}

// Delete DELETE /api/admins/:documentId
func (h *AdminHandler) Delete(c *gin.Context) {
	if err := h.adminSvc.Delete(c.Request.Context(), c.Param("documentId")); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *AdminHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAdminNotFound):
		response.NotFound(c, 11001, "administrateur introuvable")
	case errors.Is(err, service.ErrAdminEmailExists):
		response.Conflict(c, 11002, "email déjà utilisé")
	case errors.Is(err, service.ErrAdminCinExists):
		response.Conflict(c, 11003, "CIN déjà utilisé")
	default:
		response.InternalError(c)
	}
}
