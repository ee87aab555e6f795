package account_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	domain "github.com/BruksfildServices01/valet-reports/internal/domain/account"
	"github.com/BruksfildServices01/valet-reports/internal/models"
)

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
	return nil, domain.ErrNotFound
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
	return nil, domain.ErrNotFound
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Phone == user.Phone {
			return domain.ErrPhoneTaken
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, *user)
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
