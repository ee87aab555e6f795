package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	WeeklyWorkbookFilename = "weekly_shift_reports.xlsx"

	maxSheetName     = 31
	defaultSheetName = "Sheet1"
)

var sheetNameReplacer = strings.NewReplacer(
	":", " ", `\`, " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")",
)

// sheetName turns a location name into a valid, unused worksheet name.
func sheetName(name string, used map[string]bool) string {
	base := strings.Trim(sheetNameReplacer.Replace(name), "' ")
	if base == "" {
		base = UnspecifiedLocation
	}
	base = truncateRunes(base, maxSheetName)

	candidate := base
	for i := 2; used[strings.ToLower(candidate)]; i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		candidate = truncateRunes(base, maxSheetName-len(suffix)) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// WriteWeeklyXLSX renders the export grouping as a workbook with one sheet
// per location. Every week gets a title row, its shift rows and a totals
// row.
func WriteWeeklyXLSX(w io.Writer, groups []LocationGroup, loc *time.Location) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	used := map[string]bool{}
	first := ""

	for _, g := range groups {
		name := sheetName(g.Location, used)
		if first == "" {
			first = name
		}
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("new sheet %q: %w", name, err)
		}
		if err := writeLocationSheet(f, name, g, loc, bold); err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
	}

	if first != "" && !used[strings.ToLower(defaultSheetName)] {
		if err := f.DeleteSheet(defaultSheetName); err != nil {
			return err
		}
		idx, err := f.GetSheetIndex(first)
		if err != nil {
			return err
		}
		f.SetActiveSheet(idx)
	}

	return f.Write(w)
}

func writeLocationSheet(f *excelize.File, sheet string, g LocationGroup, loc *time.Location, bold int) error {
	row := 1

	setRow := func(values []any, style bool) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
		if style {
			last, err := excelize.CoordinatesToCellName(len(WeeklyHeader), row)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell, last, bold); err != nil {
				return err
			}
		}
		row++
		return nil
	}

	header := make([]any, len(WeeklyHeader))
	for i, h := range WeeklyHeader {
		header[i] = h
	}
	if err := setRow(header, true); err != nil {
		return err
	}

	for _, wk := range g.Weeks {
		if err := setRow([]any{"Week: " + wk.Label}, true); err != nil {
			return err
		}

		var hours, online, cash float64
		var cars int
		for _, r := range wk.Rows {
			values := []any{
				r.ID,
				r.ValetName,
				r.Phone,
				r.ShiftDate.In(loc).Format(csvTimeLayout),
				num(r.Hours),
				r.Cars,
				num(r.OnlineTips),
				num(r.CashTips),
				r.Total(),
				r.LocationName,
			}
			if err := setRow(values, false); err != nil {
				return err
			}
			hours += num(r.Hours)
			cars += r.Cars
			online += num(r.OnlineTips)
			cash += num(r.CashTips)
		}

		totals := []any{"", "Week total", "", "", hours, cars, online, cash, online + cash, ""}
		if err := setRow(totals, true); err != nil {
			return err
		}
		row++
	}

	return f.SetColWidth(sheet, "B", "B", 24)
}
