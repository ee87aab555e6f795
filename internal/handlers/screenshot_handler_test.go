package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/valet-reports/internal/domain/report"
	"github.com/BruksfildServices01/valet-reports/internal/handlers"
	"github.com/BruksfildServices01/valet-reports/internal/infra/storage"
	ucReport "github.com/BruksfildServices01/valet-reports/internal/usecase/report"
)

func newScreenshotRouter(t *testing.T, repo *fakeReports) (*gin.Engine, *storage.Local) {
	t.Helper()

	store, err := storage.NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	h := handlers.NewScreenshotHandler(ucReport.NewScreenshotGallery(repo), store)

	r := gin.New()
	r.GET("/api/uploads/*key", h.Serve)
	r.GET("/api/admin/screenshots", h.Gallery)
	return r, store
}

func TestServeLocalScreenshot(t *testing.T) {
	r, store := newScreenshotRouter(t, &fakeReports{})

	key := "screenshots/2024/03/a.webp"
	if err := store.Put(context.Background(), key, []byte("RIFFdata"), "image/webp"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	w := get(r, "/api/uploads/"+key)
	if w.Code != http.StatusOK || w.Body.String() != "RIFFdata" {
		t.Fatalf("unexpected response %d %q", w.Code, w.Body)
	}

	for _, path := range []string{
		"/api/uploads/screenshots/2024/03/missing.webp",
		"/api/uploads/screenshots//2024/03/a.webp",
		"/api/uploads/",
	} {
		if w := get(r, path); w.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, w.Code)
		}
	}
}

func TestGalleryReturnsURLs(t *testing.T) {
	repo := &fakeReports{shots: []domain.ScreenshotRow{
		{ShiftReportID: 7, ValetName: "Ann", FilePath: "screenshots/2024/03/a.webp"},
		{ShiftReportID: 7, ValetName: "Ann", FilePath: "screenshots/2024/03/b.webp"},
		{ShiftReportID: 8, ValetName: "Bob"},
	}}
	r, _ := newScreenshotRouter(t, repo)

	w := get(r, "/api/admin/screenshots")
	var body struct {
		Data  []domain.GalleryEntry `json:"data"`
		Total int                   `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Total != 2 || len(body.Data[0].Screenshots) != 2 || len(body.Data[1].Screenshots) != 0 {
		t.Fatalf("unexpected gallery %+v", body)
	}
	if body.Data[0].Screenshots[1] != "/api/uploads/screenshots/2024/03/b.webp" {
		t.Fatalf("unexpected url %q", body.Data[0].Screenshots[1])
	}
}
