package report

import "time"

// A valet week runs from Monday 04:00:00 to the following Monday 03:59:59.
const weekStartHour = 4

const dateLayout = "2006-01-02"

// WeekStart returns the Monday 04:00 that opens the valet week containing t.
// The calculation is done in t's location; callers convert to the reporting
// timezone first.
func WeekStart(t time.Time) time.Time {
	d := t
	if d.Weekday() == time.Monday && d.Hour() < weekStartHour {
		d = d.AddDate(0, 0, -1)
	}

	diff := int(d.Weekday()) - int(time.Monday)
	if diff < 0 {
		diff += 7
	}

	return time.Date(d.Year(), d.Month(), d.Day()-diff, weekStartHour, 0, 0, 0, d.Location())
}

// WeekLabel renders the valet week of t as "YYYY-MM-DD to YYYY-MM-DD".
// Equal labels mean the same grouping bucket.
func WeekLabel(t time.Time) string {
	start := WeekStart(t)
	end := start.AddDate(0, 0, 6)
	return start.Format(dateLayout) + " to " + end.Format(dateLayout)
}
