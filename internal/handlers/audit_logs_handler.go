package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/valet-reports/internal/audit"
	"github.com/BruksfildServices01/valet-reports/internal/httperr"
	"github.com/BruksfildServices01/valet-reports/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogReader interface {
	List(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error)
}

type AuditLogsHandler struct {
	logs AuditLogReader
	loc  *time.Location
}

func NewAuditLogsHandler(logs AuditLogReader, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		UserID: optionalID(c, "user_id"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	// --------------------------------------------------
	// Day bounds in the reporting timezone
	// --------------------------------------------------

	if from := c.Query("from"); from != "" {
		if d, err := time.ParseInLocation("2006-01-02", from, h.loc); err == nil {
			f.From = d
		}
	}
	if to := c.Query("to"); to != "" {
		if d, err := time.ParseInLocation("2006-01-02", to, h.loc); err == nil {
			f.To = d.AddDate(0, 0, 1)
		}
	}

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Could not load audit logs.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
