package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Sylvio143/G-stagiaire/internal/dto"
	"github.com/Sylvio143/G-stagiaire/internal/service"
	"github.com/Sylvio143/G-stagiaire/pkg/response"
)

// NotificationHandler serves the /notifications routes.
type NotificationHandler struct {
	notifSvc service.NotificationService
}

// NewNotificationHandler creates the NotificationHandler.
func NewNotificationHandler(notifSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifSvc: notifSvc}
}

// List GET /api/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	notifs, err := h.notifSvc.ListAll(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, notifs)
}

// ListByCompte GET /api/notifications/compte/:compteId
func (h *NotificationHandler) ListByCompte(c *gin.Context) {
	notifs, err := h.notifSvc.ListByCompte(c.Request.Context(), c.Param("compteId"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, notifs)
}

// ListNonLues GET /api/notifications/compte/:compteId/non-lues
func (h *NotificationHandler) ListNonLues(c *gin.Context) {
	notifs, err := h.notifSvc.ListByCompteNonLues(c.Request.Context(), c.Param("compteId"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, notifs)
}

// CountNonLues GET /api/notifications/compte/:compteId/count-non-lues
func (h *NotificationHandler) CountNonLues(c *gin.Context) {
	count, err := h.notifSvc.CountNonLues(c.Request.Context(), c.Param("compteId"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, dto.CountResponse{Count: count})
}

// ListByType GET /api/notifications/type/:type
func (h *NotificationHandler) ListByType(c *gin.Context) {
	notifs, err := h.notifSvc.ListByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, notifs)
}

// ListByReference GET /api/notifications/reference/:typeReference/:referenceId
func (h *NotificationHandler) ListByReference(c *gin.Context) {
	notifs, err := h.notifSvc.ListByReference(c.Request.Context(), c.Param("typeReference"), c.Param("referenceId"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, notifs)
}

// Count GET /api/notifications/stats/count
func (h *NotificationHandler) Count(c *gin.Context) {
	count, err := h.notifSvc.Count(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, dto.CountResponse{Count: count})
}

// CountByType GET /api/notifications/stats/type/:type/count
func (h *NotificationHandler) CountByType(c *gin.Context) {
	count, err := h.notifSvc.CountByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, dto.CountResponse{Count: count})
}

// Get GET /api/notifications/:documentId
func (h *NotificationHandler) Get(c *gin.Context) {
	notif, err := h.notifSvc.GetByDocumentID(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, notif)
}

// Create POST /api/notifications/create
func (h *NotificationHandler) Create(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}
	notif, err := h.notifSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, notif)
}

// Update PUT /api/notifications/:documentId
func (h *NotificationHandler) Update(c *gin.Context) {
	var req dto.UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}
	notif, err := h.notifSvc.Update(c.Request.Context(), c.Param("documentId"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, notif)
}

// MarquerLue PUT /api/notifications/:documentId/marquer-lue
func (h *NotificationHandler) MarquerLue(c *gin.Context) {
	notif, err := h.notifSvc.MarquerLue(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, notif)
}

// MarquerToutesLues PUT /api/notifications/compte/:compteId/marquer-toutes-lues
func (h *NotificationHandler) MarquerToutesLues(c *gin.Context) {
	if err := h.notifSvc.MarquerToutesLues(c.Request.Context(), c.Param("compteId")); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// Delete DELETE /api/notifications/:documentId
func (h *NotificationHandler) Delete(c *gin.Context) {
	if err := h.notifSvc.Delete(c.Request.Context(), c.Param("documentId")); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *NotificationHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotificationNotFound):
		response.NotFound(c, 19001, "notification introuvable")
	case errors.Is(err, service.ErrNotificationInvalidType):
		response.BadRequest(c, 19002, "type de notification invalide")
	case errors.Is(err, service.ErrCompteNotFound):
		response.NotFound(c, 19003, "compte utilisateur introuvable")
	default:
		response.InternalError(c)
	}
}
