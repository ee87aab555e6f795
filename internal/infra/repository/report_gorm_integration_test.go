//go:build integration

package repository_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/valet-reports/internal/config"
	"github.com/BruksfildServices01/valet-reports/internal/db"
	"github.com/BruksfildServices01/valet-reports/internal/domain/report"
	"github.com/BruksfildServices01/valet-reports/internal/infra/repository"
	"github.com/BruksfildServices01/valet-reports/internal/models"
)

// Run with: TEST_DATABASE_URL=postgres://... go test -tags integration ./internal/infra/repository/
// The tables of that database are truncated.

const reportTZ = "America/New_York"

type fixture struct {
	db    *gorm.DB
	loc   *time.Location
	ann   models.User
	bob   models.User
	cid   models.User
	lotA  models.Location
	lotB  models.Location
	photo uint
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	conn, err := db.Open(context.Background(), &config.Config{
		DBUrl:             dsn,
		DBMaxOpenConns:    4,
		DBMaxIdleConns:    2,
		DBConnectAttempts: 3,
		DBConnectBackoff:  200 * time.Millisecond,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close(conn) })

	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := conn.Exec(`TRUNCATE shift_screenshots, shift_reports, locations, users, audit_logs RESTART IDENTITY CASCADE`).Error; err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return conn
}

func seed(t *testing.T) *fixture {
	t.Helper()

	conn := openTestDB(t)
	loc, err := time.LoadLocation(reportTZ)
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	f := &fixture{db: conn, loc: loc}

	mustCreate := func(v any) {
		t.Helper()
		if err := conn.Create(v).Error; err != nil {
			t.Fatalf("create %T: %v", v, err)
		}
	}

	f.ann = models.User{Name: "Ann", Phone: "5550000001", PasswordHash: "x", Role: models.RoleValet}
	f.bob = models.User{Name: "Bob", Phone: "5550000002", PasswordHash: "x", Role: models.RoleValet}
	f.cid = models.User{Name: "Cid", Phone: "5550000003", PasswordHash: "x", Role: models.RoleValet}
	admin := models.User{Name: "Boss", Phone: "5550000009", PasswordHash: "x", Role: models.RoleAdmin}
	for _, u := range []*models.User{&f.ann, &f.bob, &f.cid, &admin} {
		mustCreate(u)
	}

	f.lotA = models.Location{Name: "Lot A"}
	f.lotB = models.Location{Name: "Lot B"}
	mustCreate(&f.lotA)
	mustCreate(&f.lotB)

	shifts := repository.NewShiftGormRepository(conn)
	add := func(u models.User, l *models.Location, at time.Time, hours, online, cash float64, paths ...string) uint {
		t.Helper()
		r := &models.ShiftReport{UserID: u.ID, ShiftDate: at, Hours: hours, OnlineTips: online, CashTips: cash}
		if l != nil {
			r.LocationID = &l.ID
		}
		if err := shifts.CreateWithScreenshots(context.Background(), r, paths); err != nil {
			t.Fatalf("create report: %v", err)
		}
		return r.ID
	}

	add(f.ann, &f.lotA, time.Date(2024, 3, 4, 10, 0, 0, 0, loc), 5, 20, 10)
	// 01:30 UTC on the 5th is still the 4th in New York.
	f.photo = add(f.ann, &f.lotA, time.Date(2024, 3, 5, 1, 30, 0, 0, time.UTC), 2, 5, 0, "screenshots/a.webp", "screenshots/b.webp")
	add(f.bob, &f.lotB, time.Date(2024, 3, 11, 9, 0, 0, 0, loc), 6, 15, 5)
	add(f.bob, nil, time.Date(2024, 3, 12, 12, 0, 0, 0, loc), 3, 0, 0)

	return f
}

func TestLeaderboardAgainstPostgres(t *testing.T) {
	f := seed(t)
	repo := repository.NewReportGormRepository(f.db)
	ctx := context.Background()

	rows, err := repo.Leaderboard(ctx, report.NewLeaderboardQuery("", "", nil))
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(rows) != 3 || rows[0].ID != f.bob.ID || rows[0].TotalHours != 9 || rows[1].ID != f.ann.ID || rows[2].TotalHours != 0 {
		t.Fatalf("unexpected leaderboard %+v", rows)
	}

	rows, err = repo.Leaderboard(ctx, report.NewLeaderboardQuery("total_tips", "desc", &f.lotA.ID))
	if err != nil {
		t.Fatalf("Leaderboard by location: %v", err)
	}
	if len(rows) != 3 || rows[0].ID != f.ann.ID || rows[0].TotalTips != 35 {
		t.Fatalf("unexpected location leaderboard %+v", rows)
	}
	if rows[1].ID != f.bob.ID || rows[2].ID != f.cid.ID || rows[1].TotalTips != 0 {
		t.Fatalf("zero rows must tie-break by id: %+v", rows)
	}
}

func TestChartPointsAgainstPostgres(t *testing.T) {
	f := seed(t)
	repo := repository.NewReportGormRepository(f.db)
	ctx := context.Background()

	points, err := repo.ChartPoints(ctx, report.ChartQuery{Attribute: report.AttrHours, Timezone: reportTZ})
	if err != nil {
		t.Fatalf("ChartPoints: %v", err)
	}
	chart := report.BuildChart(points, false, "hours")
	want := []string{"2024-03-04", "2024-03-11", "2024-03-12"}
	if len(chart.Labels) != len(want) {
		t.Fatalf("unexpected labels %v", chart.Labels)
	}
	for i := range want {
		if chart.Labels[i] != want[i] {
			t.Fatalf("unexpected labels %v", chart.Labels)
		}
	}
	if d := chart.Datasets[0].Data; d[0] != 7 || d[1] != 6 || d[2] != 3 {
		t.Fatalf("unexpected totals %v", d)
	}

	points, err = repo.ChartPoints(ctx, report.ChartQuery{
		Attribute:  report.AttrTotalTips,
		LocationID: &f.lotA.ID,
		PerValet:   true,
		Timezone:   reportTZ,
	})
	if err != nil {
		t.Fatalf("ChartPoints per valet: %v", err)
	}
	if len(points) != 1 || points[0].UserID != f.ann.ID || points[0].UserName != "Ann" || points[0].Value != 35 {
		t.Fatalf("unexpected per valet points %+v", points)
	}

	points, err = repo.ChartPoints(ctx, report.ChartQuery{
		Attribute: report.AttrCashTips,
		ValetID:   &f.bob.ID,
		Timezone:  reportTZ,
	})
	if err != nil {
		t.Fatalf("ChartPoints single valet: %v", err)
	}
	if len(points) != 2 || points[0].Date != "2024-03-11" || points[0].Value != 5 {
		t.Fatalf("unexpected single valet points %+v", points)
	}
}

func TestRowsAndScreenshotsAgainstPostgres(t *testing.T) {
	f := seed(t)
	repo := repository.NewReportGormRepository(f.db)
	ctx := context.Background()

	rows, err := repo.ListRows(ctx, report.OrderByLocationThenDate)
	if err != nil {
		t.Fatalf("ListRows: %v", err)
	}
	if len(rows) != 4 || rows[0].LocationID != nil || rows[0].GroupName() != report.UnspecifiedLocation {
		t.Fatalf("rows without location must come first: %+v", rows)
	}
	if rows[1].LocationName != "Lot A" || !rows[1].ShiftDate.Before(rows[2].ShiftDate) {
		t.Fatalf("unexpected location order %+v", rows)
	}

	groups := report.GroupForExport(rows, f.loc)
	if len(groups) != 3 || groups[1].Location != "Lot A" || len(groups[1].Weeks) != 1 {
		t.Fatalf("unexpected export groups %+v", groups)
	}

	rows, err = repo.ListRows(ctx, report.OrderNewestFirst)
	if err != nil {
		t.Fatalf("ListRows newest: %v", err)
	}
	if rows[0].ValetName != "Bob" || rows[0].Phone != "5550000002" {
		t.Fatalf("unexpected newest row %+v", rows[0])
	}

	shots, err := repo.ScreenshotRows(ctx, &f.lotA.ID)
	if err != nil {
		t.Fatalf("ScreenshotRows: %v", err)
	}
	entries := report.GroupScreenshots(shots)
	if len(entries) != 2 || entries[0].ShiftReportID != f.photo || len(entries[0].Screenshots) != 2 || len(entries[1].Screenshots) != 0 {
		t.Fatalf("unexpected gallery %+v", entries)
	}
}
