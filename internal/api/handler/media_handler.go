package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Sylvio143/G-stagiaire/internal/dto"
	"github.com/Sylvio143/G-stagiaire/internal/service"
	"github.com/Sylvio143/G-stagiaire/pkg/response"
)

// MediaHandler serves the /media routes.
type MediaHandler struct {
	mediaSvc service.MediaService
}

// NewMediaHandler creates the MediaHandler.
func NewMediaHandler(mediaSvc service.MediaService) *MediaHandler {
	return &MediaHandler{mediaSvc: mediaSvc}
}

// Upload POST /api/media/upload (multipart field "file")
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 10001, "champ multipart 'file' manquant")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c)
		return
	}
	defer f.Close()

	media, err := h.mediaSvc.Upload(c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		f)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, media)
}

// List GET /api/media
func (h *MediaHandler) List(c *gin.Context) {
	files, err := h.mediaSvc.ListAll(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, files)
}

// ListImages GET /api/media/images
func (h *MediaHandler) ListImages(c *gin.Context) {
	files, err := h.mediaSvc.ListImages(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, files)
}

// ListPdfs GET /api/media/pdfs
func (h *MediaHandler) ListPdfs(c *gin.Context) {
	files, err := h.mediaSvc.ListPdfs(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, files)
}

// ListByMime GET /api/media/mime/:mime
func (h *MediaHandler) ListByMime(c *gin.Context) {
	files, err := h.mediaSvc.ListByMime(c.Request.Context(), c.Param("mime"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, files)
}

// Stats GET /api/media/stats
func (h *MediaHandler) Stats(c *gin.Context) {
	stats, err := h.mediaSvc.Stats(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, stats)
}

// Get GET /api/media/:documentId
func (h *MediaHandler) Get(c *gin.Context) {
	media, err := h.mediaSvc.GetByDocumentID(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, media)
}

// GetByName GET /api/media/name/:name
func (h *MediaHandler) GetByName(c *gin.Context) {
	media, err := h.mediaSvc.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, media)
}

// Update PUT /api/media/:documentId
func (h *MediaHandler) Update(c *gin.Context) {
	var req dto.UpdateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "corps de requête invalide")
		return
	}
	media, err := h.mediaSvc.Update(c.Request.Context(), c.Param("documentId"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, media)
}

// Delete DELETE /api/media/:documentId
func (h *MediaHandler) Delete(c *gin.Context) {
	if err := h.mediaSvc.Delete(c.Request.Context(), c.Param("documentId")); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *MediaHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMediaNotFound):
		response.NotFound(c, 18001, "fichier média introuvable")
	case errors.Is(err, service.ErrMediaEmpty):
		response.BadRequest(c, 18002, "fichier vide")
	case errors.Is(err, service.ErrMediaTooLarge):
		response.BadRequest(c, 18003, "fichier trop volumineux")
	default:
		response.InternalError(c)
	}
}
