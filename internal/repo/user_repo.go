package repo

import (
	"context"

	"evcharge-dashboard-server/internal/models"
	"evcharge-dashboard-server/internal/store"
)

type UserRepo struct {
	store *store.Store
}

func NewUserRepo(s *store.Store) *UserRepo {
	return &UserRepo{store: s}
}

// GetByUsername matches the username exactly (case-sensitive).
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, u := range r.store.Snapshot().Users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, u := range r.store.Snapshot().Users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}
