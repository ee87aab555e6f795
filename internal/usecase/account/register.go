package account

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/valet-reports/internal/audit"
	domain "github.com/BruksfildServices01/valet-reports/internal/domain/account"
	"github.com/BruksfildServices01/valet-reports/internal/httperr"
	"github.com/BruksfildServices01/valet-reports/internal/models"
	"github.com/BruksfildServices01/valet-reports/internal/validators"
)

type RegisterInput struct {
	Name     string
	Phone    string
	Password string
}

type Register struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegister(repo domain.Repository, audit *audit.Dispatcher) *Register {
	return &Register{repo: repo, audit: audit}
}

// Execute creates a valet account. Admins are only created at startup.
func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || strings.TrimSpace(in.Phone) == "" || in.Password == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	phone, ok := validators.NormalizePhone(in.Phone)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	user, err := createUser(ctx, uc.repo, name, phone, in.Password, models.RoleValet)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   audit.ActionUserRegistered,
		Entity:   audit.EntityUser,
		EntityID: &user.ID,
	})

	return user, nil
}

func createUser(ctx context.Context, repo domain.Repository, name, phone, password, role string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Phone:        phone,
		PasswordHash: string(hashed),
		Role:         role,
	}

	if err := repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrPhoneTaken) {
			return nil, httperr.ErrBusiness("phone_already_registered")
		}
		return nil, err
	}
	return user, nil
}
