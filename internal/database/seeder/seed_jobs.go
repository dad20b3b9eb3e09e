package seeder

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	//go:embed jobs.seed.json
	jobsSeedJSON []byte

	//go:embed jobs.schema.json
	jobsSchemaJSON []byte
)

type seedFile struct {
	Jobs []SeedJob `json:"jobs"`
}

type SeedJob struct {
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Description     string   `json:"description"`
	Requirements    []string `json:"requirements"`
	Location        string   `json:"location"`
	Department      string   `json:"department"`
	ExperienceLevel string   `json:"experienceLevel"`
	Type            string   `json:"type"`
	Active          *bool    `json:"active"`
}

// JobSeeder inserts the sample jobs. Existing slugs are left untouched.
type JobSeeder struct {
	// Data overrides the embedded seed file.
	Data   []byte
	Logger *log.Logger
}

func (JobSeeder) Name() string { return "jobs" }

func (s JobSeeder) Run(ctx context.Context, db database.DB) error {
	data := s.Data
	if data == nil {
		data = jobsSeedJSON
	}
	jobs, err := ParseJobs(data)
	if err != nil {
		return err
	}

	if err := EnsureTableColumns(ctx, db, "jobs",
		"id",
		"title",
		"slug",
		"description",
		"requirements",
		"location",
		"department",
		"experience_level",
		"type",
		"active",
		"created_at",
		"updated_at",
	); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	now := time.Now().UTC()
	inserted := 0
	for _, j := range jobs {
		active := true
		if j.Active != nil {
			active = *j.Active
		}
		affected, err := tx.Exec(
			ctx,
			`INSERT INTO jobs (id, title, slug, description, requirements, location, department,
				experience_level, type, active, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
			 ON CONFLICT (slug) DO NOTHING`,
			uuid.New(), j.Title, j.Slug, j.Description, j.Requirements, j.Location, j.Department,
			j.ExperienceLevel, j.Type, active, now,
		)
		if err != nil {
			return fmt.Errorf("insert %s: %w", j.Slug, err)
		}
		inserted += int(affected)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	if s.Logger != nil {
		s.Logger.Printf("[Seed] jobs inserted=%d skipped=%d", inserted, len(jobs)-inserted)
	}
	return nil
}

// ParseJobs checks data against the seed schema before decoding it.
func ParseJobs(data []byte) ([]SeedJob, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("jobs.schema.json", bytes.NewReader(jobsSchemaJSON)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("jobs.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("unmarshal seed: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return nil, fmt.Errorf("seed does not match schema: %w", err)
	}

	var f seedFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	for _, j := range f.Jobs {
		if !job.ExperienceLevel(j.ExperienceLevel).Valid() || !job.EmploymentType(j.Type).Valid() {
			return nil, fmt.Errorf("seed job %s: unknown experience level or type", j.Slug)
		}
	}
	return f.Jobs, nil
}
