package models

import "time"

type ShiftScreenshot struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ShiftReportID uint   `gorm:"not null;index" json:"shift_report_id"`
	FilePath      string `gorm:"size:255;not null" json:"file_path"`

	CreatedAt time.Time `json:"created_at"`
}
