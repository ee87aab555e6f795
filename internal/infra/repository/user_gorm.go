package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/valet-reports/internal/db"
	"github.com/BruksfildServices01/valet-reports/internal/domain/account"
	"github.com/BruksfildServices01/valet-reports/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

var _ account.Repository = (*UserGormRepository)(nil)

func (r *UserGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, account.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserGormRepository) FindByPhone(
	ctx context.Context,
	phone string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, account.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserGormRepository) Create(
	ctx context.Context,
	user *models.User,
) error {

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return account.ErrPhoneTaken
		}
		return err
	}
	return nil
}
