package account

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/valet-reports/internal/models"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrPhoneTaken = errors.New("phone already registered")
)

type Repository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	// Create returns ErrPhoneTaken when the phone is already registered.
	Create(ctx context.Context, user *models.User) error
}
