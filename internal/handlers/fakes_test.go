package handlers_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/valet-reports/internal/audit"
	"github.com/BruksfildServices01/valet-reports/internal/domain/account"
	domain "github.com/BruksfildServices01/valet-reports/internal/domain/report"
	"github.com/BruksfildServices01/valet-reports/internal/models"
)

var errBoom = errors.New("boom")

func init() {
	gin.SetMode(gin.TestMode)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newYork(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

// --------- reports ---------

type fakeReports struct {
	rows   []domain.Row
	board  []domain.LeaderboardRow
	boardQ domain.LeaderboardQuery
	points []domain.ChartPoint
	chartQ domain.ChartQuery
	shots  []domain.ScreenshotRow
	err    error
}

func (f *fakeReports) ListRows(context.Context, domain.RowOrder) ([]domain.Row, error) {
	return f.rows, f.err
}

func (f *fakeReports) Leaderboard(_ context.Context, q domain.LeaderboardQuery) ([]domain.LeaderboardRow, error) {
	f.boardQ = q
	return f.board, f.err
}

func (f *fakeReports) ChartPoints(_ context.Context, q domain.ChartQuery) ([]domain.ChartPoint, error) {
	f.chartQ = q
	return f.points, f.err
}

func (f *fakeReports) ScreenshotRows(context.Context, *uint) ([]domain.ScreenshotRow, error) {
	return f.shots, f.err
}

// --------- users ---------

type fakeUsers struct {
	mu     sync.Mutex
	nextID uint
	users  []models.User
}

func (f *fakeUsers) FindByID(_ context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, account.ErrNotFound
}

func (f *fakeUsers) FindByPhone(_ context.Context, phone string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Phone == phone {
			u := u
			return &u, nil
		}
	}
	return nil, account.ErrNotFound
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Phone == user.Phone {
			return account.ErrPhoneTaken
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, *user)
	return nil
}

// --------- audit ---------

type nopSink struct{}

func (nopSink) Log(context.Context, audit.Event) error { return nil }

type fakeAuditReader struct {
	filter audit.Filter
	logs   []models.AuditLog
}

func (f *fakeAuditReader) List(_ context.Context, filter audit.Filter) ([]models.AuditLog, int64, error) {
	f.filter = filter
	return f.logs, int64(len(f.logs)), nil
}
