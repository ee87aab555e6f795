package shift

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/valet-reports/internal/models"
)

var ErrNotFound = errors.New("shift report not found")

type Repository interface {
	// -------- Location --------
	LocationExists(
		ctx context.Context,
		id uint,
	) (bool, error)

	// -------- Report (create) --------
	// CreateWithScreenshots inserts the report and one screenshot row per
	// path in a single transaction.
	CreateWithScreenshots(
		ctx context.Context,
		report *models.ShiftReport,
		paths []string,
	) error

	// -------- Report (read) --------
	GetReport(
		ctx context.Context,
		id uint,
	) (*models.ShiftReport, error)

	ListByUser(
		ctx context.Context,
		userID uint,
	) ([]models.ShiftReport, error)

	// -------- Report (admin) --------
	UpdateReport(
		ctx context.Context,
		report *models.ShiftReport,
	) error

	// DeleteReport removes the report and its screenshot rows and returns
	// the stored paths of those screenshots.
	DeleteReport(
		ctx context.Context,
		id uint,
	) ([]string, error)
}
