package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/valet-reports/internal/domain/shift"
	"github.com/BruksfildServices01/valet-reports/internal/models"
)

type ShiftGormRepository struct {
	db *gorm.DB
}

func NewShiftGormRepository(db *gorm.DB) *ShiftGormRepository {
	return &ShiftGormRepository{db: db}
}

var _ shift.Repository = (*ShiftGormRepository)(nil)

// --------------------------------------------------
// Location
// --------------------------------------------------

func (r *ShiftGormRepository) LocationExists(
	ctx context.Context,
	id uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Location{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Report (create)
// --------------------------------------------------

func (r *ShiftGormRepository) CreateWithScreenshots(
	ctx context.Context,
	report *models.ShiftReport,
	paths []string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(report).Error; err != nil {
			return err
		}

		if len(paths) == 0 {
			return nil
		}

		shots := make([]models.ShiftScreenshot, 0, len(paths))
		for _, p := range paths {
			shots = append(shots, models.ShiftScreenshot{
				ShiftReportID: report.ID,
				FilePath:      p,
			})
		}
		if err := tx.Create(&shots).Error; err != nil {
			return err
		}

		report.Screenshots = shots
		return nil
	})
}

// --------------------------------------------------
// Report (read)
// --------------------------------------------------

func (r *ShiftGormRepository) GetReport(
	ctx context.Context,
	id uint,
) (*models.ShiftReport, error) {

	var report models.ShiftReport
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Location").
		Preload("Screenshots", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shift.ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *ShiftGormRepository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]models.ShiftReport, error) {

	var reports []models.ShiftReport
	if err := r.db.WithContext(ctx).
		Preload("Location").
		Preload("Screenshots", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("user_id = ?", userID).
		Order("shift_date DESC").
		Order("id DESC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// --------------------------------------------------
// Report (admin)
// --------------------------------------------------

func (r *ShiftGormRepository) UpdateReport(
	ctx context.Context,
	report *models.ShiftReport,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.ShiftReport{}).
		Where("id = ?", report.ID).
		Updates(map[string]any{
			"shift_date":  report.ShiftDate,
			"hours":       report.Hours,
			"cars":        report.Cars,
			"online_tips": report.OnlineTips,
			"cash_tips":   report.CashTips,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shift.ErrNotFound
	}
	return nil
}

func (r *ShiftGormRepository) DeleteReport(
	ctx context.Context,
	id uint,
) ([]string, error) {

	var paths []string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ShiftScreenshot{}).
			Where("shift_report_id = ?", id).
			Pluck("file_path", &paths).Error; err != nil {
			return err
		}

		if err := tx.Where("shift_report_id = ?", id).
			Delete(&models.ShiftScreenshot{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.ShiftReport{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return shift.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
