package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/valet-reports/internal/dto"
	"github.com/BruksfildServices01/valet-reports/internal/httperr"
	"github.com/BruksfildServices01/valet-reports/internal/middleware"
	"github.com/BruksfildServices01/valet-reports/internal/session"
	ucAccount "github.com/BruksfildServices01/valet-reports/internal/usecase/account"
)

type AuthHandler struct {
	register     *ucAccount.Register
	login        *ucAccount.Login
	sessions     *session.Manager
	secureCookie bool
}

func NewAuthHandler(
	register *ucAccount.Register,
	login *ucAccount.Login,
	sessions *session.Manager,
	secureCookie bool,
) *AuthHandler {
	return &AuthHandler{
		register:     register,
		login:        login,
		sessions:     sessions,
		secureCookie: secureCookie,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.register.Execute(c.Request.Context(), ucAccount.RegisterInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": dto.NewUserDTO(user)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.login.Execute(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	token, sess, err := h.sessions.Issue(c.Request.Context(), user.ID, user.Role)
	if err != nil {
		httperr.Internal(c, "session_create_failed", "Could not start session.")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookie,
		token,
		int(h.sessions.TTL().Seconds()),
		"/",
		"",
		h.secureCookie,
		true,
	)

	c.JSON(http.StatusOK, gin.H{
		"user":       dto.NewUserDTO(user),
		"token":      token,
		"expires_at": sess.ExpiresAt,
		"redirect":   dto.HomePath(user),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middleware.TokenFromRequest(c); token != "" {
		err := h.sessions.Revoke(c.Request.Context(), token)
		if err != nil && !errors.Is(err, session.ErrInvalidToken) {
			httperr.Internal(c, "session_revoke_failed", "Could not end session.")
			return
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secureCookie, true)
	c.Status(http.StatusNoContent)
}
