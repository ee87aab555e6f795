package handlers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/valet-reports/internal/domain/report"
	"github.com/BruksfildServices01/valet-reports/internal/dto"
	"github.com/BruksfildServices01/valet-reports/internal/httperr"
	"github.com/BruksfildServices01/valet-reports/internal/httpresp"
	"github.com/BruksfildServices01/valet-reports/internal/infra/storage"
	ucReport "github.com/BruksfildServices01/valet-reports/internal/usecase/report"
)

const presignTTL = 15 * time.Minute

type ScreenshotHandler struct {
	gallery *ucReport.ScreenshotGallery
	store   storage.Storage
}

func NewScreenshotHandler(gallery *ucReport.ScreenshotGallery, store storage.Storage) *ScreenshotHandler {
	return &ScreenshotHandler{gallery: gallery, store: store}
}

// Gallery lists reports with the URLs of their screenshots, optionally for
// one location.
func (h *ScreenshotHandler) Gallery(c *gin.Context) {
	entries, err := h.gallery.Execute(c.Request.Context(), optionalID(c, "location_id"))
	if err != nil {
		httperr.Internal(c, "gallery_failed", "Could not load screenshots.")
		return
	}

	for i := range entries {
		for j, key := range entries[i].Screenshots {
			entries[i].Screenshots[j] = dto.ScreenshotURL(key)
		}
	}
	httpresp.List[domain.GalleryEntry](c, entries)
}

// Serve streams a stored screenshot from disk or redirects to a short lived
// object store URL.
func (h *ScreenshotHandler) Serve(c *gin.Context) {
	key, err := storage.CleanKey(c.Param("key"))
	if err != nil {
		httperr.NotFound(c, "screenshot_not_found", "Screenshot not found.")
		return
	}

	switch s := h.store.(type) {
	case storage.FileServer:
		p, err := s.Path(key)
		if err != nil {
			httperr.NotFound(c, "screenshot_not_found", "Screenshot not found.")
			return
		}
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			httperr.NotFound(c, "screenshot_not_found", "Screenshot not found.")
			return
		}
		c.Header("Cache-Control", "private, max-age=86400")
		c.File(p)

	case storage.Presigner:
		url, err := s.PresignGet(c.Request.Context(), key, presignTTL)
		if err != nil {
			httperr.Internal(c, "screenshot_url_failed", "Could not load screenshot.")
			return
		}
		c.Redirect(http.StatusFound, url)

	default:
		httperr.NotFound(c, "screenshot_not_found", "Screenshot not found.")
	}
}
