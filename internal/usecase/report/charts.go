package report

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/valet-reports/internal/domain/report"
)

type ChartResult struct {
	Attribute domain.Attribute `json:"attribute"`
	domain.Chart
}

type Charts struct {
	repo domain.Repository
	loc  *time.Location
}

func NewCharts(repo domain.Repository, loc *time.Location) *Charts {
	return &Charts{repo: repo, loc: loc}
}

// Totals sums one attribute per day across all valets.
func (uc *Charts) Totals(ctx context.Context, attribute string, locationID *uint) (*ChartResult, error) {
	q := domain.ChartQuery{
		Attribute:  domain.ParseAttribute(attribute),
		LocationID: locationID,
		Timezone:   uc.loc.String(),
	}
	return uc.run(ctx, q, string(q.Attribute))
}

// Compare sums one attribute per day and valet. With valetID set only that
// valet is charted, as a single series.
func (uc *Charts) Compare(ctx context.Context, attribute string, locationID, valetID *uint) (*ChartResult, error) {
	q := domain.ChartQuery{
		Attribute:  domain.ParseAttribute(attribute),
		LocationID: locationID,
		ValetID:    valetID,
		PerValet:   valetID == nil,
		Timezone:   uc.loc.String(),
	}
	return uc.run(ctx, q, domain.SingleSeriesLabel)
}

func (uc *Charts) run(ctx context.Context, q domain.ChartQuery, singleLabel string) (*ChartResult, error) {
	points, err := uc.repo.ChartPoints(ctx, q)
	if err != nil {
		return nil, err
	}
	return &ChartResult{
		Attribute: q.Attribute,
		Chart:     domain.BuildChart(points, q.PerValet, singleLabel),
	}, nil
}
