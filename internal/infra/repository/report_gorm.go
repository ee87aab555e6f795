package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/valet-reports/internal/domain/report"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

var _ report.Repository = (*ReportGormRepository)(nil)

const rowColumns = `sr.id, sr.user_id, u.name AS valet_name, u.phone,
	sr.shift_date, sr.hours, sr.cars, sr.online_tips, sr.cash_tips,
	sr.location_id, COALESCE(l.name, '') AS location_name`

func (r *ReportGormRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("shift_reports sr").
		Joins("JOIN users u ON sr.user_id = u.id").
		Joins("LEFT JOIN locations l ON sr.location_id = l.id")
}

// --------------------------------------------------
// Rows
// --------------------------------------------------

func (r *ReportGormRepository) ListRows(
	ctx context.Context,
	order report.RowOrder,
) ([]report.Row, error) {

	q := r.joined(ctx).Select(rowColumns)

	switch order {
	case report.OrderByLocationThenDate:
		q = q.Order("l.id ASC NULLS FIRST").Order("sr.shift_date ASC").Order("sr.id ASC")
	default:
		q = q.Order("sr.shift_date DESC").Order("sr.id DESC")
	}

	var rows []report.Row
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Aggregates
// --------------------------------------------------

func (r *ReportGormRepository) Leaderboard(
	ctx context.Context,
	q report.LeaderboardQuery,
) ([]report.LeaderboardRow, error) {

	stmt, args := q.SQL()

	var rows []report.LeaderboardRow
	if err := r.db.WithContext(ctx).Raw(stmt, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportGormRepository) ChartPoints(
	ctx context.Context,
	q report.ChartQuery,
) ([]report.ChartPoint, error) {

	stmt, args := q.SQL()

	var points []report.ChartPoint
	if err := r.db.WithContext(ctx).Raw(stmt, args...).Scan(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}

// --------------------------------------------------
// Gallery
// --------------------------------------------------

func (r *ReportGormRepository) ScreenshotRows(
	ctx context.Context,
	locationID *uint,
) ([]report.ScreenshotRow, error) {

	q := r.joined(ctx).
		Select(`sr.id AS shift_report_id, sr.shift_date,
			COALESCE(l.name, '') AS location_name, u.name AS valet_name,
			COALESCE(sc.file_path, '') AS file_path`).
		Joins("LEFT JOIN shift_screenshots sc ON sc.shift_report_id = sr.id")

	if locationID != nil {
		q = q.Where("sr.location_id = ?", *locationID)
	}

	var rows []report.ScreenshotRow
	if err := q.
		Order("sr.shift_date DESC").
		Order("sr.id DESC").
		Order("sc.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
