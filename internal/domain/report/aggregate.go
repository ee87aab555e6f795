package report

import (
	"sort"
	"time"
)

// ===============================
// Weekly export grouping
// ===============================

type WeekGroup struct {
	Label string `json:"label"`
	Rows  []Row  `json:"rows"`
}

type LocationGroup struct {
	Location string      `json:"location"`
	Weeks    []WeekGroup `json:"weeks"`
}

// GroupForExport partitions rows by location name and then by valet week.
// Locations and weeks keep the order in which they are first seen.
func GroupForExport(rows []Row, loc *time.Location) []LocationGroup {
	var groups []LocationGroup
	locIdx := map[string]int{}
	weekIdx := map[string]map[string]int{}

	for _, r := range rows {
		name := r.GroupName()

		li, ok := locIdx[name]
		if !ok {
			li = len(groups)
			locIdx[name] = li
			weekIdx[name] = map[string]int{}
			groups = append(groups, LocationGroup{Location: name})
		}

		label := WeekLabel(r.ShiftDate.In(loc))
		wi, ok := weekIdx[name][label]
		if !ok {
			wi = len(groups[li].Weeks)
			weekIdx[name][label] = wi
			groups[li].Weeks = append(groups[li].Weeks, WeekGroup{Label: label})
		}

		groups[li].Weeks[wi].Rows = append(groups[li].Weeks[wi].Rows, r)
	}

	return groups
}

// Flatten returns the rows of the export groups in group order.
func Flatten(groups []LocationGroup) []Row {
	var out []Row
	for _, g := range groups {
		for _, w := range g.Weeks {
			out = append(out, w.Rows...)
		}
	}
	return out
}

// ===============================
// Manager day view
// ===============================

type LocationDay struct {
	Location    string  `json:"location"`
	Shifts      []Row   `json:"shifts"`
	TotalHours  float64 `json:"total_hours"`
	TotalCars   int     `json:"total_cars"`
	TotalOnline float64 `json:"total_online"`
	TotalCash   float64 `json:"total_cash"`
	TotalTips   float64 `json:"total_tips"`
}

type Day struct {
	Day       string        `json:"day"`
	Locations []LocationDay `json:"locations"`
}

// GroupByDay partitions rows by calendar day in loc and then by location.
// Days come back most recent first; locations inside a day keep first-seen
// order and their shifts are sorted by valet name.
func GroupByDay(rows []Row, loc *time.Location) []Day {
	var days []Day
	dayIdx := map[string]int{}
	locIdx := map[string]map[string]int{}

	for _, r := range rows {
		day := r.ShiftDate.In(loc).Format(dateLayout)

		di, ok := dayIdx[day]
		if !ok {
			di = len(days)
			dayIdx[day] = di
			locIdx[day] = map[string]int{}
			days = append(days, Day{Day: day})
		}

		name := r.GroupName()
		li, ok := locIdx[day][name]
		if !ok {
			li = len(days[di].Locations)
			locIdx[day][name] = li
			days[di].Locations = append(days[di].Locations, LocationDay{Location: name})
		}

		// shift times are reported in the same zone as their day bucket
		r.ShiftDate = r.ShiftDate.In(loc)
		days[di].Locations[li].Shifts = append(days[di].Locations[li].Shifts, r)
	}

	for i := range days {
		for j := range days[i].Locations {
			ld := &days[i].Locations[j]
			sort.SliceStable(ld.Shifts, func(a, b int) bool {
				return ld.Shifts[a].ValetName < ld.Shifts[b].ValetName
			})
			for _, s := range ld.Shifts {
				ld.TotalHours += num(s.Hours)
				ld.TotalCars += s.Cars
				ld.TotalOnline += num(s.OnlineTips)
				ld.TotalCash += num(s.CashTips)
			}
			ld.TotalTips = ld.TotalOnline + ld.TotalCash
		}
	}

	// YYYY-MM-DD sorts chronologically as a string
	sort.SliceStable(days, func(a, b int) bool {
		return days[a].Day > days[b].Day
	})

	return days
}
