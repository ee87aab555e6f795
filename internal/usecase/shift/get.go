package shift

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/valet-reports/internal/domain/shift"
	"github.com/BruksfildServices01/valet-reports/internal/httperr"
	"github.com/BruksfildServices01/valet-reports/internal/models"
)

type GetShift struct {
	repo domain.Repository
}

func NewGetShift(repo domain.Repository) *GetShift {
	return &GetShift{repo: repo}
}

func (uc *GetShift) Execute(ctx context.Context, id uint) (*models.ShiftReport, error) {
	report, err := uc.repo.GetReport(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("report_not_found")
		}
		return nil, err
	}
	return report, nil
}
