package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/valet-reports/internal/httperr"
	"github.com/BruksfildServices01/valet-reports/internal/httpresp"
	ucLocation "github.com/BruksfildServices01/valet-reports/internal/usecase/location"
)

type LocationHandler struct {
	list   *ucLocation.ListLocations
	create *ucLocation.CreateLocation
	delete *ucLocation.DeleteLocation
}

func NewLocationHandler(
	list *ucLocation.ListLocations,
	create *ucLocation.CreateLocation,
	delete *ucLocation.DeleteLocation,
) *LocationHandler {
	return &LocationHandler{list: list, create: create, delete: delete}
}

type CreateLocationRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *LocationHandler) List(c *gin.Context) {
	locs, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "locations_list_failed", "Could not load locations.")
		return
	}
	httpresp.List(c, locs)
}

func (h *LocationHandler) Create(c *gin.Context) {
	var req CreateLocationRequest
	if !bindJSON(c, &req) {
		return
	}

	loc, err := h.create.Execute(c.Request.Context(), currentUserID(c), req.Name)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, loc)
}

func (h *LocationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid location id.")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), currentUserID(c), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
