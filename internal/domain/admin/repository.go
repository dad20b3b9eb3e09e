package admin

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("admin not found")

type Repository interface {
	GetByEmail(ctx context.Context, email string) (Admin, error)
	Upsert(ctx context.Context, a Admin) error
}
