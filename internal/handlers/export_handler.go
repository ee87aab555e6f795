package handlers

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/valet-reports/internal/domain/report"
	"github.com/BruksfildServices01/valet-reports/internal/httperr"
	ucReport "github.com/BruksfildServices01/valet-reports/internal/usecase/report"
)

const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ExportHandler struct {
	export *ucReport.ExportReports
	log    *slog.Logger
}

func NewExportHandler(export *ucReport.ExportReports, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{export: export, log: logger}
}

func (h *ExportHandler) Bulk(c *gin.Context) {
	h.send(c, domain.BulkFilename, csvContentType, h.export.Bulk)
}

func (h *ExportHandler) Weekly(c *gin.Context) {
	h.send(c, domain.WeeklyFilename, csvContentType, h.export.Weekly)
}

func (h *ExportHandler) WeeklyWorkbook(c *gin.Context) {
	h.send(c, domain.WeeklyWorkbookFilename, xlsxContentType, h.export.WeeklyWorkbook)
}

// send renders the whole file before writing headers so a failed query
// still produces a JSON error instead of a truncated download.
func (h *ExportHandler) send(
	c *gin.Context,
	filename string,
	contentType string,
	render func(context.Context, io.Writer) error,
) {
	var buf bytes.Buffer
	if err := render(c.Request.Context(), &buf); err != nil {
		h.log.Error("export failed", "file", filename, "error", err)
		httperr.Internal(c, "export_failed", "Could not export reports.")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
