package shift_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/BruksfildServices01/valet-reports/internal/audit"
	domain "github.com/BruksfildServices01/valet-reports/internal/domain/shift"
	"github.com/BruksfildServices01/valet-reports/internal/models"
)

type fakeShifts struct {
	locations map[uint]bool
	reports   map[uint]*models.ShiftReport
	nextID    uint
	createErr error
}

func newFakeShifts() *fakeShifts {
	return &fakeShifts{locations: map[uint]bool{1: true}, reports: map[uint]*models.ShiftReport{}}
}

func (f *fakeShifts) LocationExists(_ context.Context, id uint) (bool, error) {
	return f.locations[id], nil
}

func (f *fakeShifts) CreateWithScreenshots(_ context.Context, r *models.ShiftReport, paths []string) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	r.ID = f.nextID
	for _, p := range paths {
		r.Screenshots = append(r.Screenshots, models.ShiftScreenshot{ShiftReportID: r.ID, FilePath: p})
	}
	cp := *r
	f.reports[r.ID] = &cp
	return nil
}

func (f *fakeShifts) GetReport(_ context.Context, id uint) (*models.ShiftReport, error) {
	r, ok := f.reports[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeShifts) ListByUser(_ context.Context, userID uint) ([]models.ShiftReport, error) {
	var out []models.ShiftReport
	for _, r := range f.reports {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeShifts) UpdateReport(_ context.Context, r *models.ShiftReport) error {
	if _, ok := f.reports[r.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *r
	f.reports[r.ID] = &cp
	return nil
}

func (f *fakeShifts) DeleteReport(_ context.Context, id uint) ([]string, error) {
	r, ok := f.reports[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(f.reports, id)
	var paths []string
	for _, s := range r.Screenshots {
		paths = append(paths, s.FilePath)
	}
	return paths, nil
}

type memoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: map[string][]byte{}}
}

func (s *memoryStore) Put(_ context.Context, key string, body []byte, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = body
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

type nopSink struct{}

func (nopSink) Log(context.Context, audit.Event) error { return nil }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newDispatcher(t *testing.T) *audit.Dispatcher {
	t.Helper()
	d := audit.NewDispatcher(nopSink{}, quietLogger())
	t.Cleanup(d.Close)
	return d
}

func screenshot(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 40, 30))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}
