package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"
)

const (
	BulkFilename   = "shift_reports.csv"
	WeeklyFilename = "weekly_shift_reports.csv"
)

// Shift dates are rendered in the reporting timezone without an offset.
const csvTimeLayout = "2006-01-02T15:04"

var BulkHeader = []string{
	"ID", "Name", "Phone", "Shift Date", "Hours", "# of Cars",
	"Online Payments", "Cash Payments", "Total", "Location",
}

var WeeklyHeader = []string{
	"ID", "Valet Name", "Phone", "Shift Date", "Hours", "# of Cars",
	"Online Tips", "Cash Tips", "Total", "Location",
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(num(v), 'f', -1, 64)
}

// WriteBulkCSV writes every row flat, in the order given.
func WriteBulkCSV(w io.Writer, rows []Row, loc *time.Location) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(BulkHeader); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.ValetName,
			r.Phone,
			r.ShiftDate.In(loc).Format(csvTimeLayout),
			formatNumber(r.Hours),
			strconv.Itoa(r.Cars),
			formatNumber(r.OnlineTips),
			formatNumber(r.CashTips),
			formatNumber(r.Total()),
			r.LocationName,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// quote always wraps s in double quotes, doubling any embedded ones.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// WeeklyCSV renders grouped rows in the sectioned weekly layout: a
// "Location:" line per location, an indented "Week:" line per week, the
// week's rows, then a blank line closing each week and each location.
func WeeklyCSV(groups []LocationGroup, loc *time.Location) string {
	lines := []string{strings.Join(WeeklyHeader, ",")}

	for _, g := range groups {
		lines = append(lines, "Location: "+g.Location)
		for _, wk := range g.Weeks {
			lines = append(lines, "  Week: "+wk.Label)
			for _, r := range wk.Rows {
				lines = append(lines, strings.Join([]string{
					strconv.FormatUint(uint64(r.ID), 10),
					quote(r.ValetName),
					r.Phone,
					r.ShiftDate.In(loc).Format(csvTimeLayout),
					formatNumber(r.Hours),
					strconv.Itoa(r.Cars),
					formatNumber(r.OnlineTips),
					formatNumber(r.CashTips),
					formatNumber(r.Total()),
					quote(r.LocationName),
				}, ","))
			}
			lines = append(lines, "")
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func WriteWeeklyCSV(w io.Writer, groups []LocationGroup, loc *time.Location) error {
	_, err := io.WriteString(w, WeeklyCSV(groups, loc))
	return err
}
