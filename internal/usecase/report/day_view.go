package report

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/valet-reports/internal/domain/report"
)

type DayView struct {
	repo domain.Repository
	loc  *time.Location
}

func NewDayView(repo domain.Repository, loc *time.Location) *DayView {
	return &DayView{repo: repo, loc: loc}
}

func (uc *DayView) Execute(ctx context.Context) ([]domain.Day, error) {
	rows, err := uc.repo.ListRows(ctx, domain.OrderNewestFirst)
	if err != nil {
		return nil, err
	}
	return domain.GroupByDay(rows, uc.loc), nil
}
