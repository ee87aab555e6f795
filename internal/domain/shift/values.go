package shift

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/valet-reports/internal/httperr"
	"github.com/BruksfildServices01/valet-reports/internal/timezone"
)

const MaxScreenshots = 5

// Values are the figures a valet reports for one shift.
type Values struct {
	ShiftDate  time.Time
	Hours      float64
	OnlineTips float64
	CashTips   float64
	Cars       int
}

func (v Values) Validate() error {
	switch {
	case v.ShiftDate.IsZero():
		return httperr.ErrBusiness("invalid_shift_date")
	case !nonNegative(v.Hours):
		return httperr.ErrBusiness("invalid_hours")
	case !nonNegative(v.OnlineTips):
		return httperr.ErrBusiness("invalid_online_tips")
	case !nonNegative(v.CashTips):
		return httperr.ErrBusiness("invalid_cash_tips")
	case v.Cars < 0:
		return httperr.ErrBusiness("invalid_cars")
	}
	return nil
}

func nonNegative(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
}

// Form holds the raw text fields of a shift submission.
type Form struct {
	ShiftDate  string
	Hours      string
	OnlineTips string
	CashTips   string
	Cars       string
	LocationID string
}

// Parse checks that every field is present and well formed. Local shift
// times are read in loc.
func (f Form) Parse(loc *time.Location) (Values, uint, error) {
	for _, s := range []string{f.ShiftDate, f.Hours, f.OnlineTips, f.CashTips, f.Cars, f.LocationID} {
		if strings.TrimSpace(s) == "" {
			return Values{}, 0, httperr.ErrBusiness("missing_fields")
		}
	}

	var v Values
	var err error

	if v.ShiftDate, err = timezone.ParseLocal(f.ShiftDate, loc); err != nil {
		return Values{}, 0, httperr.ErrBusiness("invalid_shift_date")
	}
	if v.Hours, err = parseAmount(f.Hours); err != nil {
		return Values{}, 0, httperr.ErrBusiness("invalid_hours")
	}
	if v.OnlineTips, err = parseAmount(f.OnlineTips); err != nil {
		return Values{}, 0, httperr.ErrBusiness("invalid_online_tips")
	}
	if v.CashTips, err = parseAmount(f.CashTips); err != nil {
		return Values{}, 0, httperr.ErrBusiness("invalid_cash_tips")
	}
	if v.Cars, err = strconv.Atoi(strings.TrimSpace(f.Cars)); err != nil {
		return Values{}, 0, httperr.ErrBusiness("invalid_cars")
	}

	locationID, err := strconv.ParseUint(strings.TrimSpace(f.LocationID), 10, 64)
	if err != nil || locationID == 0 {
		return Values{}, 0, httperr.ErrBusiness("invalid_location")
	}

	if err := v.Validate(); err != nil {
		return Values{}, 0, err
	}
	return v, uint(locationID), nil
}

func parseAmount(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
