package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/valet-reports/internal/httperr"
	"github.com/BruksfildServices01/valet-reports/internal/models"
	"github.com/BruksfildServices01/valet-reports/internal/session"
)

const (
	ContextUserID       = "userID"
	ContextUserRole     = "userRole"
	ContextSessionToken = "sessionToken"

	SessionCookie = "valet_session"
)

// SessionResolver looks up the session behind a token.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*session.Session, error)
}

// TokenFromRequest reads the session token from the Authorization header,
// falling back to the session cookie.
func TokenFromRequest(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

func RequireLogin(sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, "login_required", "Please log in.")
			return
		}

		sess, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) || errors.Is(err, session.ErrInvalidToken) {
				httperr.Abort(c, http.StatusUnauthorized, "invalid_session", "Session expired. Please log in again.")
				return
			}
			httperr.Abort(c, http.StatusInternalServerError, "session_lookup_failed", "Could not verify session.")
			return
		}

		c.Set(ContextUserID, sess.UserID)
		c.Set(ContextUserRole, sess.Role)
		c.Set(ContextSessionToken, token)

		c.Next()
	}
}

// RequireAdmin must run after RequireLogin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserRole) != models.RoleAdmin {
			httperr.Abort(c, http.StatusForbidden, "admin_required", "Admin access required.")
			return
		}
		c.Next()
	}
}
