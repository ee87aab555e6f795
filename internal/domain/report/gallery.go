package report

import "time"

// ScreenshotRow is one report joined with at most one of its screenshots.
// FilePath is empty for reports without screenshots.
type ScreenshotRow struct {
	ShiftReportID uint
	ShiftDate     time.Time
	LocationName  string
	ValetName     string
	FilePath      string
}

type GalleryEntry struct {
	ShiftReportID uint      `json:"shift_report_id"`
	ShiftDate     time.Time `json:"shift_date"`
	LocationName  string    `json:"location_name"`
	ValetName     string    `json:"valet_name"`
	Screenshots   []string  `json:"screenshots"`
}

// GroupScreenshots folds joined rows into one entry per report, keeping the
// order in which reports first appear.
func GroupScreenshots(rows []ScreenshotRow) []GalleryEntry {
	out := []GalleryEntry{}
	idx := map[uint]int{}

	for _, r := range rows {
		i, ok := idx[r.ShiftReportID]
		if !ok {
			i = len(out)
			idx[r.ShiftReportID] = i
			out = append(out, GalleryEntry{
				ShiftReportID: r.ShiftReportID,
				ShiftDate:     r.ShiftDate,
				LocationName:  r.LocationName,
				ValetName:     r.ValetName,
				Screenshots:   []string{},
			})
		}
		if r.FilePath != "" {
			out[i].Screenshots = append(out[i].Screenshots, r.FilePath)
		}
	}
	return out
}
