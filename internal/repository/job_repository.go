package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobboard/internal/database"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/domain/job"
	"jobboard/internal/search"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound   = errors.New("job not found")
	ErrDuplicateSlug = errors.New("job slug already exists")
)

type JobRepository interface {
	Create(ctx context.Context, j job.Job) (job.Job, error)
	GetBySlug(ctx context.Context, slug string, activeOnly bool) (job.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]job.Job, error)
	Update(ctx context.Context, slug string, in JobUpdate) (job.Job, error)
	DeleteBySlug(ctx context.Context, slug string) error
	List(ctx context.Context, f search.JobFilter, skip, limit int) ([]job.Job, error)
	Count(ctx context.Context, f search.JobFilter) (int, error)
}

// JobUpdate replaces every listed field. Active is left alone when nil.
type JobUpdate struct {
	Title           string
	Slug            string
	Description     string
	Requirements    []string
	Location        string
	Department      string
	ExperienceLevel job.ExperienceLevel
	Type            job.EmploymentType
	Active          *bool
	UpdatedAt       time.Time
}

const jobColumns = `id, title, slug, description, requirements, location, department,
	experience_level, type, active, created_at, updated_at`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (id, title, slug, description, requirements, location, department,
			experience_level, type, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING `+jobColumns,
		j.ID, j.Title, j.Slug, j.Description, nonNilStrings(j.Requirements), j.Location, j.Department,
		string(j.ExperienceLevel), string(j.Type), j.Active, j.CreatedAt, j.UpdatedAt,
	)
	out, err := scanJob(row)
	if err != nil {
		if dbpostgres.IsUniqueViolation(err) {
			return job.Job{}, ErrDuplicateSlug
		}
		return job.Job{}, fmt.Errorf("insert job: %w", err)
	}
	return out, nil
}

func (r *PostgresJobRepository) GetBySlug(ctx context.Context, slug string, activeOnly bool) (job.Job, error) {
	q := `SELECT ` + jobColumns + ` FROM jobs WHERE slug = $1`
	if activeOnly {
		q += ` AND active = true`
	}
	out, err := scanJob(r.db.QueryRow(ctx, q, slug))
	if err != nil {
		if dbpostgres.IsNoRows(err) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return out, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	out, err := scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if dbpostgres.IsNoRows(err) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return out, nil
}

func (r *PostgresJobRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]job.Job, error) {
	out := make(map[uuid.UUID]job.Job, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out[j.ID] = j
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Update(ctx context.Context, slug string, in JobUpdate) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE jobs SET
			title = $2,
			slug = $3,
			description = $4,
			requirements = $5,
			location = $6,
			department = $7,
			experience_level = $8,
			type = $9,
			active = COALESCE($10, active),
			updated_at = $11
		 WHERE slug = $1
		 RETURNING `+jobColumns,
		slug, in.Title, in.Slug, in.Description, nonNilStrings(in.Requirements), in.Location, in.Department,
		string(in.ExperienceLevel), string(in.Type), in.Active, in.UpdatedAt,
	)
	out, err := scanJob(row)
	if err != nil {
		if dbpostgres.IsNoRows(err) {
			return job.Job{}, ErrJobNotFound
		}
		if dbpostgres.IsUniqueViolation(err) {
			return job.Job{}, ErrDuplicateSlug
		}
		return job.Job{}, fmt.Errorf("update job: %w", err)
	}
	return out, nil
}

func (r *PostgresJobRepository) DeleteBySlug(ctx context.Context, slug string) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) List(ctx context.Context, f search.JobFilter, skip, limit int) ([]job.Job, error) {
	if limit <= 0 {
		limit = search.DefaultLimit
	}
	if skip < 0 {
		skip = 0
	}

	where, args := BuildJobWhere(f)
	args = append(args, limit, skip)
	q := fmt.Sprintf(
		`SELECT %s FROM jobs%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		jobColumns, where, len(args)-1, len(args),
	)

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0, limit)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Count(ctx context.Context, f search.JobFilter) (int, error) {
	where, args := BuildJobWhere(f)
	var c int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM jobs`+where, args...).Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

// BuildJobWhere renders f as a WHERE clause (with a leading space) and its
// positional arguments. It returns "" when f has no constraints.
func BuildJobWhere(f search.JobFilter) (string, []any) {
	conds := make([]string, 0, 6)
	args := make([]any, 0, 5)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.ActiveOnly {
		conds = append(conds, "active = true")
	}
	if f.Text != "" {
		add("search_vector @@ websearch_to_tsquery('english', $%d)", f.Text)
	}
	if f.Type != "" {
		add("type = $%d", f.Type)
	}
	if f.LocationContains != "" {
		add(`location ILIKE $%d ESCAPE '\'`, "%"+escapeLike(f.LocationContains)+"%")
	}
	if f.Department != "" {
		add("department = $%d", f.Department)
	}
	if f.ExperienceLevel != "" {
		add("experience_level = $%d", f.ExperienceLevel)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (job.Job, error) {
	var j job.Job
	var level, typ string
	if err := row.Scan(
		&j.ID, &j.Title, &j.Slug, &j.Description, &j.Requirements, &j.Location, &j.Department,
		&level, &typ, &j.Active, &j.CreatedAt, &j.UpdatedAt,
	); err != nil {
		return job.Job{}, err
	}
	j.ExperienceLevel = job.ExperienceLevel(level)
	j.Type = job.EmploymentType(typ)
	if j.Requirements == nil {
		j.Requirements = []string{}
	}
	return j, nil
}
