package report

import (
	"context"
	"io"
	"time"

	domain "github.com/BruksfildServices01/valet-reports/internal/domain/report"
)

// ExportReports renders every shift report as a download.
type ExportReports struct {
	repo domain.Repository
	loc  *time.Location
}

func NewExportReports(repo domain.Repository, loc *time.Location) *ExportReports {
	return &ExportReports{repo: repo, loc: loc}
}

// Bulk writes one CSV line per report, newest first.
func (uc *ExportReports) Bulk(ctx context.Context, w io.Writer) error {
	rows, err := uc.repo.ListRows(ctx, domain.OrderNewestFirst)
	if err != nil {
		return err
	}
	return domain.WriteBulkCSV(w, rows, uc.loc)
}

func (uc *ExportReports) weekly(ctx context.Context) ([]domain.LocationGroup, error) {
	rows, err := uc.repo.ListRows(ctx, domain.OrderByLocationThenDate)
	if err != nil {
		return nil, err
	}
	return domain.GroupForExport(rows, uc.loc), nil
}

// Weekly writes the location and valet-week sectioned CSV.
func (uc *ExportReports) Weekly(ctx context.Context, w io.Writer) error {
	groups, err := uc.weekly(ctx)
	if err != nil {
		return err
	}
	return domain.WriteWeeklyCSV(w, groups, uc.loc)
}

// WeeklyWorkbook writes the same grouping as an xlsx workbook.
func (uc *ExportReports) WeeklyWorkbook(ctx context.Context, w io.Writer) error {
	groups, err := uc.weekly(ctx)
	if err != nil {
		return err
	}
	return domain.WriteWeeklyXLSX(w, groups, uc.loc)
}
