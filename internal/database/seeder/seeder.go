package seeder

import (
	"context"

	"jobboard/internal/database"
)

// Seeder is one idempotent step; running it twice must not duplicate rows.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
