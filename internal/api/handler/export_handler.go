package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Sylvio143/G-stagiaire/internal/service"
	"github.com/Sylvio143/G-stagiaire/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the /export routes.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportStagiaires GET /api/export/stagiaires
func (h *ExportHandler) ExportStagiaires(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportStagiaires(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	writeAttachment(c, filename, buf.Bytes())
}

// ExportStages GET /api/export/stages
func (h *ExportHandler) ExportStages(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportStages(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	writeAttachment(c, filename, buf.Bytes())
}

func writeAttachment(c *gin.Context, filename string, data []byte) {
	encoded := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encoded)
	c.Data(http.StatusOK, xlsxContentType, data)
}
