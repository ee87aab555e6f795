package report

import (
	"context"

	domain "github.com/BruksfildServices01/valet-reports/internal/domain/report"
)

type ScreenshotGallery struct {
	repo domain.Repository
}

func NewScreenshotGallery(repo domain.Repository) *ScreenshotGallery {
	return &ScreenshotGallery{repo: repo}
}

func (uc *ScreenshotGallery) Execute(ctx context.Context, locationID *uint) ([]domain.GalleryEntry, error) {
	rows, err := uc.repo.ScreenshotRows(ctx, locationID)
	if err != nil {
		return nil, err
	}
	return domain.GroupScreenshots(rows), nil
}
