package account

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	domain "github.com/BruksfildServices01/valet-reports/internal/domain/account"
	"github.com/BruksfildServices01/valet-reports/internal/models"
	"github.com/BruksfildServices01/valet-reports/internal/validators"
)

type EnsureAdmin struct {
	repo domain.Repository
	log  *slog.Logger
}

func NewEnsureAdmin(repo domain.Repository, logger *slog.Logger) *EnsureAdmin {
	return &EnsureAdmin{repo: repo, log: logger}
}

// Execute creates the bootstrap admin when a phone and password are
// configured and no user owns that phone yet. An existing user is left
// untouched.
func (uc *EnsureAdmin) Execute(ctx context.Context, name, phone, password string) error {
	if strings.TrimSpace(phone) == "" || password == "" {
		return nil
	}

	normalized, ok := validators.NormalizePhone(phone)
	if !ok {
		return errors.New("admin phone is not valid")
	}

	if _, err := uc.repo.FindByPhone(ctx, normalized); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	if strings.TrimSpace(name) == "" {
		name = "Administrator"
	}

	user, err := createUser(ctx, uc.repo, name, normalized, password, models.RoleAdmin)
	if err != nil {
		return err
	}

	uc.log.Info("created admin user", "user_id", user.ID, "phone", normalized)
	return nil
}
