package shift

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/valet-reports/internal/audit"
	domain "github.com/BruksfildServices01/valet-reports/internal/domain/shift"
	"github.com/BruksfildServices01/valet-reports/internal/httperr"
	"github.com/BruksfildServices01/valet-reports/internal/models"
)

type EditShift struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewEditShift(repo domain.Repository, audit *audit.Dispatcher) *EditShift {
	return &EditShift{repo: repo, audit: audit}
}

// Execute overwrites the reported figures of an existing report. Owner and
// location are not editable.
func (uc *EditShift) Execute(
	ctx context.Context,
	actorID uint,
	id uint,
	v domain.Values,
) (*models.ShiftReport, error) {

	if err := v.Validate(); err != nil {
		return nil, err
	}

	report, err := uc.repo.GetReport(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("report_not_found")
		}
		return nil, err
	}

	before := map[string]any{
		"shift_date":  report.ShiftDate,
		"hours":       report.Hours,
		"cars":        report.Cars,
		"online_tips": report.OnlineTips,
		"cash_tips":   report.CashTips,
	}

	report.ShiftDate = v.ShiftDate
	report.Hours = v.Hours
	report.Cars = v.Cars
	report.OnlineTips = v.OnlineTips
	report.CashTips = v.CashTips

	if err := uc.repo.UpdateReport(ctx, report); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("report_not_found")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   audit.ActionReportUpdated,
		Entity:   audit.EntityShiftReport,
		EntityID: &report.ID,
		Metadata: map[string]any{"before": before},
	})

	return report, nil
}
