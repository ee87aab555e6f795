package models

import "time"

// ShiftReport is one valet's record of a work session. Deleting a report
// removes its screenshots; users and locations referenced by a report
// cannot be deleted while the reference exists.
type ShiftReport struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ShiftDate  time.Time `gorm:"not null;index" json:"shift_date"`
	Hours      float64   `gorm:"not null" json:"hours"`
	OnlineTips float64   `gorm:"not null;default:0" json:"online_tips"`
	CashTips   float64   `gorm:"not null;default:0" json:"cash_tips"`
	Cars       int       `gorm:"not null;default:0" json:"cars"`

	LocationID *uint     `gorm:"index" json:"location_id"`
	Location   *Location `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Screenshots []ShiftScreenshot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"screenshots,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *ShiftReport) TotalTips() float64 {
	return r.OnlineTips + r.CashTips
}
