package repository

import (
	"context"
	"errors"
	"fmt"

	"jobboard/internal/database"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/domain/application"

	"github.com/google/uuid"
)

var ErrResumeNotFound = errors.New("resume not found")

// ResumeRepository keeps uploaded resume files out of the application rows.
type ResumeRepository interface {
	Put(ctx context.Context, r application.Resume) error
	Get(ctx context.Context, id uuid.UUID) (application.Resume, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresResumeRepository struct {
	db database.DB
}

func NewPostgresResumeRepository(db database.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

func (r *PostgresResumeRepository) Put(ctx context.Context, res application.Resume) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO resumes (id, filename, content_type, size_bytes, content, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		res.ID, res.Filename, res.ContentType, res.Size, res.Content, res.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert resume: %w", err)
	}
	return nil
}

func (r *PostgresResumeRepository) Get(ctx context.Context, id uuid.UUID) (application.Resume, error) {
	var res application.Resume
	err := r.db.QueryRow(ctx,
		`SELECT id, filename, content_type, size_bytes, content, created_at FROM resumes WHERE id = $1`,
		id,
	).Scan(&res.ID, &res.Filename, &res.ContentType, &res.Size, &res.Content, &res.CreatedAt)
	if err != nil {
		if dbpostgres.IsNoRows(err) {
			return application.Resume{}, ErrResumeNotFound
		}
		return application.Resume{}, err
	}
	return res, nil
}

func (r *PostgresResumeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	return err
}
