package seeder

import (
	"context"
	"log"
	"time"

	"jobboard/internal/database"
	"jobboard/internal/domain/admin"
	"jobboard/internal/infrastructure/persistence/postgres"
	ucauth "jobboard/internal/usecase/auth"

	"github.com/google/uuid"
)

// AdminSeeder provisions one admin from configuration. Re-running it with a
// new password rotates the stored hash.
type AdminSeeder struct {
	Email    string
	Password string
	Logger   *log.Logger
}

func (AdminSeeder) Name() string { return "admin" }

func (s AdminSeeder) Run(ctx context.Context, db database.DB) error {
	email := ucauth.NormalizeEmail(s.Email)
	if email == "" || s.Password == "" {
		if s.Logger != nil {
			s.Logger.Printf("[Seed] ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin")
		}
		return nil
	}

	if err := EnsureTableColumns(ctx, db, "admins", "id", "email", "password_hash", "created_at", "updated_at"); err != nil {
		return err
	}

	hash, err := ucauth.HashPassword(s.Password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	return postgres.NewAdminRepository(db).Upsert(ctx, admin.Admin{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}
