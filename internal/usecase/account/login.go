package account

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/BruksfildServices01/valet-reports/internal/domain/account"
	"github.com/BruksfildServices01/valet-reports/internal/httperr"
	"github.com/BruksfildServices01/valet-reports/internal/models"
	"github.com/BruksfildServices01/valet-reports/internal/validators"
)

type Login struct {
	repo domain.Repository
}

func NewLogin(repo domain.Repository) *Login {
	return &Login{repo: repo}
}

// Execute checks phone and password. Unknown phones and wrong passwords
// fail the same way.
func (uc *Login) Execute(ctx context.Context, phone, password string) (*models.User, error) {
	normalized, ok := validators.NormalizePhone(phone)
	if !ok || password == "" {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	user, err := uc.repo.FindByPhone(ctx, normalized)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	return user, nil
}
