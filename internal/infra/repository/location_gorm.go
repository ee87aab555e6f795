package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/valet-reports/internal/db"
	"github.com/BruksfildServices01/valet-reports/internal/domain/location"
	"github.com/BruksfildServices01/valet-reports/internal/models"
)

type LocationGormRepository struct {
	db *gorm.DB
}

func NewLocationGormRepository(db *gorm.DB) *LocationGormRepository {
	return &LocationGormRepository{db: db}
}

var _ location.Repository = (*LocationGormRepository)(nil)

func (r *LocationGormRepository) List(ctx context.Context) ([]models.Location, error) {
	var locs []models.Location
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Order("id ASC").
		Find(&locs).Error; err != nil {
		return nil, err
	}
	return locs, nil
}

func (r *LocationGormRepository) Create(ctx context.Context, loc *models.Location) error {
	return r.db.WithContext(ctx).Create(loc).Error
}

// Delete refuses to remove a location that shift reports still point at.
// The foreign key enforces the same rule for concurrent inserts.
func (r *LocationGormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.ShiftReport{}).
			Where("location_id = ?", id).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return location.ErrInUse
		}

		res := tx.Delete(&models.Location{}, id)
		if res.Error != nil {
			if db.IsForeignKeyViolation(res.Error) {
				return location.ErrInUse
			}
			return res.Error
		}
		if res.RowsAffected == 0 {
			return location.ErrNotFound
		}
		return nil
	})
}
