package location

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/valet-reports/internal/models"
)

var (
	ErrNotFound = errors.New("location not found")
	// ErrInUse is returned when shift reports still reference the location.
	ErrInUse = errors.New("location in use")
)

type Repository interface {
	List(ctx context.Context) ([]models.Location, error)
	Create(ctx context.Context, loc *models.Location) error
	Delete(ctx context.Context, id uint) error
}
