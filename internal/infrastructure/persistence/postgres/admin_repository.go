package postgres

import (
	"context"
	"strings"

	"jobboard/internal/database"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/domain/admin"
)

type AdminRepository struct {
	db database.DB
}

func NewAdminRepository(db database.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (admin.Admin, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at, updated_at FROM admins WHERE email = $1`,
		strings.ToLower(strings.TrimSpace(email)),
	)
	return scanAdmin(row)
}

// Upsert keys on email, so re-running the seeder only rotates the password.
func (r *AdminRepository) Upsert(ctx context.Context, a admin.Admin) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO admins (id, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, now(), now())
		 ON CONFLICT (email) DO UPDATE
		 SET password_hash = EXCLUDED.password_hash, updated_at = now()`,
		a.ID, strings.ToLower(strings.TrimSpace(a.Email)), a.PasswordHash,
	)
	return err
}

type adminRow interface {
	Scan(dest ...any) error
}

func scanAdmin(row adminRow) (admin.Admin, error) {
	var a admin.Admin
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if dbpostgres.IsNoRows(err) {
			return admin.Admin{}, admin.ErrNotFound
		}
		return admin.Admin{}, err
	}
	return a, nil
}
