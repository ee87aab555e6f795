package report

import (
	"math"
	"time"
)

const UnspecifiedLocation = "Unspecified"

// Row is a shift report joined with its valet and location, the unit every
// aggregation and export works on.
type Row struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	ValetName    string    `json:"valet_name"`
	Phone        string    `json:"phone"`
	ShiftDate    time.Time `json:"shift_date"`
	Hours        float64   `json:"hours"`
	Cars         int       `json:"cars"`
	OnlineTips   float64   `json:"online_tips"`
	CashTips     float64   `json:"cash_tips"`
	LocationID   *uint     `json:"location_id"`
	LocationName string    `json:"location_name"`
}

func (r Row) Total() float64 {
	return num(r.OnlineTips) + num(r.CashTips)
}

// GroupName is the location label used for grouping.
func (r Row) GroupName() string {
	if r.LocationName == "" {
		return UnspecifiedLocation
	}
	return r.LocationName
}

// num treats values that are not real numbers as zero.
func num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// RowOrder selects how rows are fetched for a given view.
type RowOrder int

const (
	// OrderNewestFirst orders by shift date descending.
	OrderNewestFirst RowOrder = iota
	// OrderByLocationThenDate orders by location id, then shift date ascending.
	OrderByLocationThenDate
)
