package dto

import (
	"time"

	"github.com/BruksfildServices01/valet-reports/internal/models"
)

const uploadsPrefix = "/api/uploads/"

// ScreenshotURL maps a stored object key to the path it is served from.
func ScreenshotURL(key string) string {
	return uploadsPrefix + key
}

type ShiftReportDTO struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	ValetName    string    `json:"valet_name,omitempty"`
	ShiftDate    time.Time `json:"shift_date"`
	Hours        float64   `json:"hours"`
	Cars         int       `json:"cars"`
	OnlineTips   float64   `json:"online_tips"`
	CashTips     float64   `json:"cash_tips"`
	TotalTips    float64   `json:"total_tips"`
	LocationID   *uint     `json:"location_id"`
	LocationName string    `json:"location_name"`
	Screenshots  []string  `json:"screenshots"`
}

func NewShiftReportDTO(r *models.ShiftReport) ShiftReportDTO {
	out := ShiftReportDTO{
		ID:          r.ID,
		UserID:      r.UserID,
		ValetName:   r.User.Name,
		ShiftDate:   r.ShiftDate,
		Hours:       r.Hours,
		Cars:        r.Cars,
		OnlineTips:  r.OnlineTips,
		CashTips:    r.CashTips,
		TotalTips:   r.TotalTips(),
		LocationID:  r.LocationID,
		Screenshots: []string{},
	}
	if r.Location != nil {
		out.LocationName = r.Location.Name
	}
	for _, s := range r.Screenshots {
		out.Screenshots = append(out.Screenshots, ScreenshotURL(s.FilePath))
	}
	return out
}

func NewShiftReportDTOs(reports []models.ShiftReport) []ShiftReportDTO {
	out := make([]ShiftReportDTO, 0, len(reports))
	for i := range reports {
		out = append(out, NewShiftReportDTO(&reports[i]))
	}
	return out
}
