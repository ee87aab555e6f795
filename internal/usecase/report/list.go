package report

import (
	"context"

	domain "github.com/BruksfildServices01/valet-reports/internal/domain/report"
)

// ListReports returns every shift report with valet and location, newest
// first.
type ListReports struct {
	repo domain.Repository
}

func NewListReports(repo domain.Repository) *ListReports {
	return &ListReports{repo: repo}
}

func (uc *ListReports) Execute(ctx context.Context) ([]domain.Row, error) {
	return uc.repo.ListRows(ctx, domain.OrderNewestFirst)
}
