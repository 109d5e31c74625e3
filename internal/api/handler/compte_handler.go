package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sylvio143/G-stagiaire/internal/dto"
	"github.com/Sylvio143/G-stagiaire/internal/model"
	"github.com/Sylvio143/G-stagiaire/internal/service"
	"github.com/Sylvio143/G-stagiaire/pkg/jwt"
	"github.com/Sylvio143/G-stagiaire/pkg/redis"
	"github.com/Sylvio143/G-stagiaire/pkg/response"
)

// CompteHandler serves the /comptes-utilisateurs and /auth routes.
type CompteHandler struct {
	compteSvc service.CompteService
	jwtMgr    *jwt.Manager
	rdb       *redis.Client
}

// NewCompteHandler creates the CompteHandler.
func NewCompteHandler(compteSvc service.CompteService, jwtMgr *jwt.Manager, rdb *redis.Client) *CompteHandler {
	return &CompteHandler{compteSvc: compteSvc, jwtMgr: jwtMgr, rdb: rdb}
}

// Authenticate POST /api/comptes-utilisateurs/authenticate
func (h *CompteHandler) Authenticate(c *gin.Context) {
	var req dto.AuthenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}
	result, err := h.compteSvc.Authenticate(c.Request.Context(), req.Email, req.MotDePasse)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

// Refresh POST /api/auth/refresh
func (h *CompteHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}
	result, err := h.compteSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

// Logout POST /api/auth/logout
// Revokes the presented refresh token through the redis blacklist.
func (h *CompteHandler) Logout(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}

	claims, err := h.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		// Already invalid: logout is idempotent.
		response.OK(c, nil)
		return
	}
	if h.rdb != nil && claims.ExpiresAt != nil {
		ttl := time.Until(claims.ExpiresAt.Time)
		if err := h.rdb.BlacklistToken(c.Request.Context(), claims.ID, ttl); err != nil {
			response.InternalError(c)
			return
		}
	}
	response.OK(c, nil)
}

// List GET /api/comptes-utilisateurs
func (h *CompteHandler) List(c *gin.Context) {
	comptes, err := h.compteSvc.ListActifs(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, comptes)
}

// ListAll GET /api/comptes-utilisateurs/tous
func (h *CompteHandler) ListAll(c *gin.Context) {
	comptes, err := h.compteSvc.ListAll(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, comptes)
}

// ListInactifs GET /api/comptes-utilisateurs/inactifs
func (h *CompteHandler) ListInactifs(c *gin.Context) {
	comptes, err := h.compteSvc.ListByStatut(c.Request.Context(), model.StatutInactif)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, comptes)
}

// ListByType GET /api/comptes-utilisateurs/type/:typeCompte
func (h *CompteHandler) ListByType(c *gin.Context) {
	typeCompte := model.TypeCompte(c.Param("typeCompte"))
	if !typeCompte.Valid() {
		response.BadRequest(c, 10001, "type de compte invalide")
		return
	}
	comptes, err := h.compteSvc.ListByType(c.Request.Context(), typeCompte)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, comptes)
}

// ListByEntity GET /api/comptes-utilisateurs/entity/:entityId
func (h *CompteHandler) ListByEntity(c *gin.Context) {
	comptes, err := h.compteSvc.ListByEntity(c.Request.Context(), c.Param("entityId"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, comptes)
}

// FindByEntity GET /api/comptes-utilisateurs/entity/:entityId/type/:typeCompte
func (h *CompteHandler) FindByEntity(c *gin.Context) {
	typeCompte := model.TypeCompte(c.Param("typeCompte"))
	if !typeCompte.Valid() {
		response.BadRequest(c, 10001, "type de compte invalide")
		return
	}
	compte, err := h.compteSvc.FindByEntity(c.Request.Context(), c.Param("entityId"), typeCompte)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, compte)
}

// Get GET /api/comptes-utilisateurs/:documentId
func (h *CompteHandler) Get(c *gin.Context) {
	compte, err := h.compteSvc.GetByDocumentID(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, compte)
}

// GetByEmail GET /api/comptes-utilisateurs/email/:email
func (h *CompteHandler) GetByEmail(c *gin.Context) {
	compte, err := h.compteSvc.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, compte)
}

// CheckEmail GET /api/comptes-utilisateurs/check-email/:email
func (h *CompteHandler) CheckEmail(c *gin.Context) {
	exists, err := h.compteSvc.ExistsByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"exists": exists})
}

// Create POST /api/comptes-utilisateurs
func (h *CompteHandler) Create(c *gin.Context) {
	var req dto.CreateCompteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}
	compte, err := h.compteSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, compte)
}

// CreateForEntity POST /api/comptes-utilisateurs/create-for-entity
func (h *CompteHandler) CreateForEntity(c *gin.Context) {
	var req dto.CreateCompteForEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}
	compte, err := h.compteSvc.CreateForEntity(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, compte)
}

// Update PUT /api/comptes-utilisateurs/:documentId
func (h *CompteHandler) Update(c *gin.Context) {
	var req dto.UpdateCompteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}
	compte, err := h.compteSvc.Update(c.Request.Context(), c.Param("documentId"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, compte)
}

// UpdatePassword PUT /api/comptes-utilisateurs/:documentId/password
func (h *CompteHandler) UpdatePassword(c *gin.Context) {
	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}
	compte, err := h.compteSvc.UpdatePassword(c.Request.Context(), c.Param("documentId"), req.NewPassword)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, compte)
}

// Desactiver PUT /api/comptes-utilisateurs/:documentId/desactiver
func (h *CompteHandler) Desactiver(c *gin.Context) {
	compte, err := h.compteSvc.Desactiver(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, compte)
}

// Activer PUT /api/comptes-utilisateurs/:documentId/activer
func (h *CompteHandler) Activer(c *gin.Context) {
	compte, err := h.compteSvc.Activer(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, compte)
}

// Delete DELETE /api/comptes-utilisateurs/:documentId
func (h *CompteHandler) Delete(c *gin.Context) {
	if err := h.compteSvc.Delete(c.Request.Context(), c.Param("documentId")); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *CompteHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCompteNotFound):
		response.NotFound(c, 17001, "compte utilisateur introuvable")
	case errors.Is(err, service.ErrEmailExists):
		response.Conflict(c, 17002, "email déjà utilisé")
	case errors.Is(err, service.ErrEntityCompteExists):
		response.Conflict(c, 17003, "un compte actif existe déjà pour cette entité")
	case errors.Is(err, service.ErrPasswordRequired):
		response.BadRequest(c, 17004, "le mot de passe est obligatoire")
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, 17005, "email ou mot de passe invalide")
	default:
		response.InternalError(c)
	}
}
