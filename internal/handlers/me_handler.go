package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/valet-reports/internal/domain/account"
	"github.com/BruksfildServices01/valet-reports/internal/dto"
	"github.com/BruksfildServices01/valet-reports/internal/httperr"
)

type MeHandler struct {
	users account.Repository
}

func NewMeHandler(users account.Repository) *MeHandler {
	return &MeHandler{users: users}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user, err := h.users.FindByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		httperr.Internal(c, "user_lookup_failed", "Could not load user.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     dto.NewUserDTO(user),
		"redirect": dto.HomePath(user),
	})
}
