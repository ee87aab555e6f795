package report_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/BruksfildServices01/valet-reports/internal/domain/report"
)

func TestLeaderboardFallsBackOnUnknownInput(t *testing.T) {
	q := report.NewLeaderboardQuery("DROP TABLE users", "xyz", nil)

	if q.Sort != report.SortTotalHours || q.Order != report.OrderDesc {
		t.Fatalf("expected total_hours/desc, got %s/%s", q.Sort, q.Order)
	}

	stmt, args := q.SQL()
	if strings.Contains(stmt, "DROP") {
		t.Fatalf("caller text leaked into query: %s", stmt)
	}
	if !strings.HasSuffix(stmt, "ORDER BY total_hours DESC, u.id ASC") {
		t.Fatalf("unexpected order clause: %s", stmt)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}

	def, _ := report.NewLeaderboardQuery("", "", nil).SQL()
	if stmt != def {
		t.Fatalf("fallback query differs from default query")
	}
}

func TestLeaderboardQueryRejectsForgedEnums(t *testing.T) {
	q := report.LeaderboardQuery{Sort: "total_hours; DELETE FROM users", Order: "asc --"}
	stmt, _ := q.SQL()
	if strings.Contains(stmt, "DELETE") || strings.Contains(stmt, "--") {
		t.Fatalf("forged enum reached query text: %s", stmt)
	}
}

func TestLeaderboardSortVariants(t *testing.T) {
	cases := []struct {
		sort, order string
		want        string
	}{
		{"total_online", "asc", "ORDER BY total_online ASC"},
		{"total_cash", "desc", "ORDER BY total_cash DESC"},
		{"total_tips", "asc", "ORDER BY total_tips ASC"},
		{"total_hours", "ASC", "ORDER BY total_hours DESC"},
	}

	for _, tc := range cases {
		stmt, _ := report.NewLeaderboardQuery(tc.sort, tc.order, nil).SQL()
		if !strings.Contains(stmt, tc.want) {
			t.Fatalf("sort=%s order=%s: expected %q in %s", tc.sort, tc.order, tc.want, stmt)
		}
	}
}

func TestLeaderboardLocationFilterInsideJoin(t *testing.T) {
	id := uint(7)
	stmt, args := report.NewLeaderboardQuery("total_tips", "desc", &id).SQL()

	if !strings.Contains(stmt, "LEFT JOIN shift_reports sr ON sr.user_id = u.id AND sr.location_id = ?") {
		t.Fatalf("location filter must live in the join: %s", stmt)
	}
	if !strings.Contains(stmt, "WHERE u.role = 'valet'") {
		t.Fatalf("missing valet filter: %s", stmt)
	}
	if !reflect.DeepEqual(args, []any{uint(7)}) {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestParseAttribute(t *testing.T) {
	cases := map[string]report.Attribute{
		"hours":       report.AttrHours,
		"online_tips": report.AttrOnlineTips,
		"cash_tips":   report.AttrCashTips,
		"total_tips":  report.AttrTotalTips,
		"":            report.AttrHours,
		"password":    report.AttrHours,
	}
	for in, want := range cases {
		if got := report.ParseAttribute(in); got != want {
			t.Fatalf("ParseAttribute(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestChartQueryArgsAndShape(t *testing.T) {
	loc, valet := uint(3), uint(9)

	stmt, args := report.ChartQuery{
		Attribute:  report.AttrTotalTips,
		LocationID: &loc,
		ValetID:    &valet,
		Timezone:   "America/New_York",
	}.SQL()

	if !reflect.DeepEqual(args, []any{"America/New_York", uint(3), uint(9)}) {
		t.Fatalf("unexpected args %v", args)
	}
	if !strings.Contains(stmt, "WHERE sr.location_id = ? AND sr.user_id = ?") {
		t.Fatalf("unexpected filter: %s", stmt)
	}
	if !strings.Contains(stmt, "COALESCE(SUM(sr.online_tips), 0) + COALESCE(SUM(sr.cash_tips), 0) AS value") {
		t.Fatalf("unexpected value expression: %s", stmt)
	}
	if strings.Contains(stmt, "GROUP BY 1, u.id") {
		t.Fatalf("single-series query must not split by valet: %s", stmt)
	}

	perValet, args := report.ChartQuery{Attribute: "bogus", PerValet: true, Timezone: "UTC"}.SQL()
	if !strings.Contains(perValet, "GROUP BY 1, u.id, u.name") || !strings.Contains(perValet, "COALESCE(SUM(sr.hours), 0) AS value") {
		t.Fatalf("unexpected per-valet query: %s", perValet)
	}
	if strings.Contains(perValet, "WHERE") || len(args) != 1 {
		t.Fatalf("unfiltered query should bind only the timezone: %s %v", perValet, args)
	}
}

func TestBuildChartDenseAxis(t *testing.T) {
	points := []report.ChartPoint{
		{Date: "2024-03-01", UserID: 1, UserName: "A", Value: 5},
		{Date: "2024-03-02", UserID: 2, UserName: "B", Value: 7},
		{Date: "2024-03-03", UserID: 1, UserName: "A", Value: 2},
	}

	chart := report.BuildChart(points, true, report.SingleSeriesLabel)

	if !reflect.DeepEqual(chart.Labels, []string{"2024-03-01", "2024-03-02", "2024-03-03"}) {
		t.Fatalf("unexpected axis %v", chart.Labels)
	}
	if len(chart.Datasets) != 2 {
		t.Fatalf("expected 2 datasets, got %d", len(chart.Datasets))
	}

	want := []report.Series{
		{Label: "A", Data: []float64{5, 0, 2}},
		{Label: "B", Data: []float64{0, 7, 0}},
	}
	if !reflect.DeepEqual(chart.Datasets, want) {
		t.Fatalf("unexpected datasets %+v", chart.Datasets)
	}
}

func TestBuildChartSingleSeries(t *testing.T) {
	points := []report.ChartPoint{
		{Date: "2024-03-02", Value: 4},
		{Date: "2024-03-01", Value: 1},
	}

	chart := report.BuildChart(points, false, report.SingleSeriesLabel)

	if len(chart.Datasets) != 1 || chart.Datasets[0].Label != "Valet Performance" {
		t.Fatalf("unexpected datasets %+v", chart.Datasets)
	}
	if !reflect.DeepEqual(chart.Datasets[0].Data, []float64{1, 4}) {
		t.Fatalf("unexpected data %v", chart.Datasets[0].Data)
	}

	empty := report.BuildChart(nil, true, report.SingleSeriesLabel)
	if len(empty.Labels) != 0 || len(empty.Datasets) != 0 {
		t.Fatalf("expected empty chart, got %+v", empty)
	}
}

func TestGroupScreenshots(t *testing.T) {
	rows := []report.ScreenshotRow{
		{ShiftReportID: 9, ValetName: "A", FilePath: "a.webp"},
		{ShiftReportID: 9, ValetName: "A", FilePath: "b.webp"},
		{ShiftReportID: 4, ValetName: "B"},
	}

	got := report.GroupScreenshots(rows)
	if len(got) != 2 || got[0].ShiftReportID != 9 || got[1].ShiftReportID != 4 {
		t.Fatalf("unexpected grouping %+v", got)
	}
	if !reflect.DeepEqual(got[0].Screenshots, []string{"a.webp", "b.webp"}) {
		t.Fatalf("unexpected screenshots %v", got[0].Screenshots)
	}
	if got[1].Screenshots == nil || len(got[1].Screenshots) != 0 {
		t.Fatalf("report without screenshots should have an empty list")
	}
}
