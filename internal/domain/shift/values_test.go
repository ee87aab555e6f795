package shift_test

import (
	"math"
	"testing"
	"time"

	"github.com/BruksfildServices01/valet-reports/internal/domain/shift"
	"github.com/BruksfildServices01/valet-reports/internal/httperr"
)

func validForm() shift.Form {
	return shift.Form{
		ShiftDate:  "2024-03-04T10:00",
		Hours:      "6.5",
		OnlineTips: "40",
		CashTips:   "12.25",
		Cars:       "31",
		LocationID: "2",
	}
}

func TestFormParse(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")

	v, locationID, err := validForm().Parse(loc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if locationID != 2 || v.Hours != 6.5 || v.OnlineTips != 40 || v.CashTips != 12.25 || v.Cars != 31 {
		t.Fatalf("unexpected values %+v location=%d", v, locationID)
	}
	if !v.ShiftDate.Equal(time.Date(2024, 3, 4, 10, 0, 0, 0, loc)) {
		t.Fatalf("unexpected shift date %s", v.ShiftDate)
	}
}

func TestFormParseErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*shift.Form)
		code   string
	}{
		{"missing hours", func(f *shift.Form) { f.Hours = " " }, "missing_fields"},
		{"missing location", func(f *shift.Form) { f.LocationID = "" }, "missing_fields"},
		{"bad date", func(f *shift.Form) { f.ShiftDate = "tomorrow" }, "invalid_shift_date"},
		{"negative hours", func(f *shift.Form) { f.Hours = "-1" }, "invalid_hours"},
		{"text tips", func(f *shift.Form) { f.OnlineTips = "lots" }, "invalid_online_tips"},
		{"nan cash", func(f *shift.Form) { f.CashTips = "NaN" }, "invalid_cash_tips"},
		{"fractional cars", func(f *shift.Form) { f.Cars = "2.5" }, "invalid_cars"},
		{"negative cars", func(f *shift.Form) { f.Cars = "-3" }, "invalid_cars"},
		{"zero location", func(f *shift.Form) { f.LocationID = "0" }, "invalid_location"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validForm()
			tc.mutate(&f)
			_, _, err := f.Parse(time.UTC)
			if !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("expected %s, got %v", tc.code, err)
			}
		})
	}
}

func TestValuesValidate(t *testing.T) {
	ok := shift.Values{ShiftDate: time.Now(), Hours: 0, Cars: 0}
	if err := ok.Validate(); err != nil {
		t.Fatalf("zero values should be accepted: %v", err)
	}

	bad := ok
	bad.OnlineTips = math.Inf(1)
	if !httperr.IsBusiness(bad.Validate(), "invalid_online_tips") {
		t.Fatalf("expected infinite tips to be rejected")
	}

	if !httperr.IsBusiness(shift.Values{}.Validate(), "invalid_shift_date") {
		t.Fatalf("expected zero date to be rejected")
	}
}
