package shift

import (
	"context"

	domain "github.com/BruksfildServices01/valet-reports/internal/domain/shift"
	"github.com/BruksfildServices01/valet-reports/internal/models"
)

type ListMyShifts struct {
	repo domain.Repository
}

func NewListMyShifts(repo domain.Repository) *ListMyShifts {
	return &ListMyShifts{repo: repo}
}

func (uc *ListMyShifts) Execute(ctx context.Context, userID uint) ([]models.ShiftReport, error) {
	return uc.repo.ListByUser(ctx, userID)
}
