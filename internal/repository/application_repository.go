package repository

import (
	"context"
	"fmt"

	"jobboard/internal/database"
	"jobboard/internal/domain/application"
)

type ApplicationRepository interface {
	Create(ctx context.Context, a application.Application) (application.Application, error)
	ListRecent(ctx context.Context, limit int) ([]application.Application, error)
}

const applicationColumns = `id, job_id, name, email, cover_letter, resume_key, resume_url, created_at`

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO applications (id, job_id, name, email, cover_letter, resume_key, resume_url, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+applicationColumns,
		a.ID, a.JobID, a.Name, a.Email, a.CoverLetter, a.ResumeKey, a.ResumeURL, a.CreatedAt,
	)
	out, err := scanApplication(row)
	if err != nil {
		return application.Application{}, fmt.Errorf("insert application: %w", err)
	}
	return out, nil
}

func (r *PostgresApplicationRepository) ListRecent(ctx context.Context, limit int) ([]application.Application, error) {
	if limit <= 0 {
		limit = 200
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+`
		 FROM applications
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanApplication(row rowScanner) (application.Application, error) {
	var a application.Application
	if err := row.Scan(
		&a.ID, &a.JobID, &a.Name, &a.Email, &a.CoverLetter, &a.ResumeKey, &a.ResumeURL, &a.CreatedAt,
	); err != nil {
		return application.Application{}, err
	}
	return a, nil
}
