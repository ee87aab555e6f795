package shift

import (
	"context"
	"errors"
	"log/slog"

	"github.com/BruksfildServices01/valet-reports/internal/audit"
	domain "github.com/BruksfildServices01/valet-reports/internal/domain/shift"
	"github.com/BruksfildServices01/valet-reports/internal/httperr"
	"github.com/BruksfildServices01/valet-reports/internal/infra/storage"
)

type DeleteShift struct {
	repo  domain.Repository
	store storage.Storage
	audit *audit.Dispatcher
	log   *slog.Logger
}

func NewDeleteShift(
	repo domain.Repository,
	store storage.Storage,
	audit *audit.Dispatcher,
	logger *slog.Logger,
) *DeleteShift {
	return &DeleteShift{repo: repo, store: store, audit: audit, log: logger}
}

// Execute deletes the report with its screenshot rows, then removes the
// stored images.
func (uc *DeleteShift) Execute(ctx context.Context, actorID, id uint) error {
	paths, err := uc.repo.DeleteReport(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrBusiness("report_not_found")
		}
		return err
	}

	for _, p := range paths {
		if err := uc.store.Delete(ctx, p); err != nil {
			uc.log.Warn("failed to remove screenshot", "key", p, "report_id", id, "error", err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   audit.ActionReportDeleted,
		Entity:   audit.EntityShiftReport,
		EntityID: &id,
		Metadata: map[string]any{"screenshots": len(paths)},
	})
	return nil
}
