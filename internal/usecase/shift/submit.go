package shift

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/valet-reports/internal/audit"
	domain "github.com/BruksfildServices01/valet-reports/internal/domain/shift"
	"github.com/BruksfildServices01/valet-reports/internal/httperr"
	"github.com/BruksfildServices01/valet-reports/internal/infra/imaging"
	"github.com/BruksfildServices01/valet-reports/internal/infra/storage"
	"github.com/BruksfildServices01/valet-reports/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SubmitShiftInput struct {
	UserID      uint
	LocationID  uint
	Values      domain.Values
	Screenshots [][]byte
}

// ======================================================
// USE CASE
// ======================================================

type SubmitShift struct {
	repo  domain.Repository
	store storage.Storage
	audit *audit.Dispatcher
	log   *slog.Logger
	now   func() time.Time
}

func NewSubmitShift(
	repo domain.Repository,
	store storage.Storage,
	audit *audit.Dispatcher,
	logger *slog.Logger,
) *SubmitShift {
	return &SubmitShift{
		repo:  repo,
		store: store,
		audit: audit,
		log:   logger,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SubmitShift) Execute(
	ctx context.Context,
	in SubmitShiftInput,
) (*models.ShiftReport, error) {

	if len(in.Screenshots) > domain.MaxScreenshots {
		return nil, httperr.ErrBusiness("too_many_screenshots")
	}
	if err := in.Values.Validate(); err != nil {
		return nil, err
	}

	ok, err := uc.repo.LocationExists(ctx, in.LocationID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("unknown_location")
	}

	// Images are checked before anything is written.
	encoded := make([][]byte, 0, len(in.Screenshots))
	for _, raw := range in.Screenshots {
		img, err := imaging.NormalizeScreenshot(raw)
		if err != nil {
			if errors.Is(err, imaging.ErrUnsupportedImage) {
				return nil, httperr.ErrBusiness("invalid_screenshot")
			}
			return nil, err
		}
		encoded = append(encoded, img)
	}

	keys := make([]string, 0, len(encoded))
	for _, img := range encoded {
		key := storage.NewKey(uc.now(), imaging.Extension)
		if err := uc.store.Put(ctx, key, img, imaging.ContentType); err != nil {
			uc.removeObjects(keys)
			return nil, err
		}
		keys = append(keys, key)
	}

	report := &models.ShiftReport{
		UserID:     in.UserID,
		LocationID: &in.LocationID,
		ShiftDate:  in.Values.ShiftDate,
		Hours:      in.Values.Hours,
		OnlineTips: in.Values.OnlineTips,
		CashTips:   in.Values.CashTips,
		Cars:       in.Values.Cars,
	}

	if err := uc.repo.CreateWithScreenshots(ctx, report, keys); err != nil {
		uc.removeObjects(keys)
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionReportSubmitted,
		Entity:   audit.EntityShiftReport,
		EntityID: &report.ID,
		Metadata: map[string]any{"screenshots": len(keys)},
	})

	return report, nil
}

// removeObjects deletes stored screenshots that no committed report refers
// to. Failures only leave orphaned objects, so they are logged.
func (uc *SubmitShift) removeObjects(keys []string) {
	for _, key := range keys {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := uc.store.Delete(ctx, key); err != nil {
			uc.log.Warn("failed to remove screenshot", "key", key, "error", err)
		}
		cancel()
	}
}
