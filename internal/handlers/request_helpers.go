package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/valet-reports/internal/httperr"
	"github.com/BruksfildServices01/valet-reports/internal/middleware"
)

func currentUserID(c *gin.Context) uint {
	return c.GetUint(middleware.ContextUserID)
}

// optionalID reads a numeric id filter from the query string. Missing,
// "all" and non-numeric values mean no filter.
func optionalID(c *gin.Context, name string) *uint {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" || raw == "all" {
		return nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return nil
	}
	id := uint(n)
	return &id
}

func pathID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// bindJSON decodes the body into req and enforces its binding tags. A body
// that parses but misses a required field is reported as missing_fields.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		httperr.FromError(c, httperr.ErrBusiness("missing_fields"))
		return false
	}
	httperr.BadRequest(c, "invalid_request", "Invalid request body.")
	return false
}
