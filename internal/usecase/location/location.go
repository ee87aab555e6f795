package location

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/valet-reports/internal/audit"
	domain "github.com/BruksfildServices01/valet-reports/internal/domain/location"
	"github.com/BruksfildServices01/valet-reports/internal/httperr"
	"github.com/BruksfildServices01/valet-reports/internal/models"
)

type ListLocations struct {
	repo domain.Repository
}

func NewListLocations(repo domain.Repository) *ListLocations {
	return &ListLocations{repo: repo}
}

func (uc *ListLocations) Execute(ctx context.Context) ([]models.Location, error) {
	return uc.repo.List(ctx)
}

type CreateLocation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateLocation(repo domain.Repository, audit *audit.Dispatcher) *CreateLocation {
	return &CreateLocation{repo: repo, audit: audit}
}

func (uc *CreateLocation) Execute(ctx context.Context, actorID uint, name string) (*models.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, httperr.ErrBusiness("invalid_location_name")
	}

	loc := &models.Location{Name: name}
	if err := uc.repo.Create(ctx, loc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   audit.ActionLocationCreated,
		Entity:   audit.EntityLocation,
		EntityID: &loc.ID,
		Metadata: map[string]any{"name": loc.Name},
	})

	return loc, nil
}

type DeleteLocation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteLocation(repo domain.Repository, audit *audit.Dispatcher) *DeleteLocation {
	return &DeleteLocation{repo: repo, audit: audit}
}

// Execute removes an unused location. Locations referenced by shift
// reports are kept and reported as location_in_use.
func (uc *DeleteLocation) Execute(ctx context.Context, actorID, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return httperr.ErrBusiness("location_not_found")
		case errors.Is(err, domain.ErrInUse):
			return httperr.ErrBusiness("location_in_use")
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   audit.ActionLocationDeleted,
		Entity:   audit.EntityLocation,
		EntityID: &id,
	})
	return nil
}
