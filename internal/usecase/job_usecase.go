package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/pkg/validation"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

// JobInput is the admin payload for creating or replacing a job.
type JobInput struct {
	Title           string   `json:"title" validate:"required,min=3"`
	Slug            string   `json:"slug" validate:"required,min=3,slug"`
	Description     string   `json:"description" validate:"required,min=10"`
	Requirements    []string `json:"requirements" validate:"required,min=1,dive,notblank"`
	Location        string   `json:"location" validate:"required,notblank"`
	Department      string   `json:"department" validate:"required,notblank"`
	ExperienceLevel string   `json:"experienceLevel" validate:"required,oneof=junior mid senior lead"`
	Type            string   `json:"type" validate:"required,oneof=full-time part-time contract internship remote"`
	Active          *bool    `json:"active"`
}

func (in JobInput) normalized() JobInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Slug = strings.TrimSpace(in.Slug)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	in.Department = strings.TrimSpace(in.Department)
	in.ExperienceLevel = strings.TrimSpace(in.ExperienceLevel)
	in.Type = strings.TrimSpace(in.Type)
	if in.Requirements != nil {
		reqs := make([]string, len(in.Requirements))
		for i, r := range in.Requirements {
			reqs[i] = strings.TrimSpace(r)
		}
		in.Requirements = reqs
	}
	return in
}

type JobMutationUsecase interface {
	CreateJob(ctx context.Context, in JobInput) (job.Job, error)
	UpdateJob(ctx context.Context, slug string, in JobInput) (job.Job, error)
	DeleteJob(ctx context.Context, slug string) error
}

type JobMutation struct {
	jobs   repository.JobRepository
	logger *log.Logger
	now    func() time.Time
}

func NewJobMutationUsecase(jobs repository.JobRepository, logger *log.Logger) *JobMutation {
	if logger == nil {
		logger = log.Default()
	}
	return &JobMutation{jobs: jobs, logger: logger, now: time.Now}
}

func (u *JobMutation) CreateJob(ctx context.Context, in JobInput) (job.Job, error) {
	in = in.normalized()
	if err := validation.Struct(in); err != nil {
		return job.Job{}, err
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := u.now().UTC()

	created, err := u.jobs.Create(ctx, job.Job{
		ID:              uuid.New(),
		Title:           in.Title,
		Slug:            in.Slug,
		Description:     in.Description,
		Requirements:    in.Requirements,
		Location:        in.Location,
		Department:      in.Department,
		ExperienceLevel: job.ExperienceLevel(in.ExperienceLevel),
		Type:            job.EmploymentType(in.Type),
		Active:          active,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return job.Job{}, ErrConflict
		}
		u.logger.Printf("[Jobs] create slug=%s failed: %v", in.Slug, err)
		return job.Job{}, ErrInternal
	}

	u.logger.Printf("[Jobs] created slug=%s id=%s", created.Slug, created.ID)
	return created, nil
}

// UpdateJob finds the target by the slug it currently has; in.Slug may
// rename it.
func (u *JobMutation) UpdateJob(ctx context.Context, slug string, in JobInput) (job.Job, error) {
	in = in.normalized()
	if err := validation.Struct(in); err != nil {
		return job.Job{}, err
	}

	updated, err := u.jobs.Update(ctx, strings.TrimSpace(slug), repository.JobUpdate{
		Title:           in.Title,
		Slug:            in.Slug,
		Description:     in.Description,
		Requirements:    in.Requirements,
		Location:        in.Location,
		Department:      in.Department,
		ExperienceLevel: job.ExperienceLevel(in.ExperienceLevel),
		Type:            job.EmploymentType(in.Type),
		Active:          in.Active,
		UpdatedAt:       u.now().UTC(),
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrJobNotFound):
			return job.Job{}, ErrNotFound
		case errors.Is(err, repository.ErrDuplicateSlug):
			return job.Job{}, ErrConflict
		}
		u.logger.Printf("[Jobs] update slug=%s failed: %v", slug, err)
		return job.Job{}, ErrInternal
	}
	return updated, nil
}

// DeleteJob leaves applications that reference the job untouched.
func (u *JobMutation) DeleteJob(ctx context.Context, slug string) error {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ErrNotFound
	}

	if err := u.jobs.DeleteBySlug(ctx, slug); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrNotFound
		}
		u.logger.Printf("[Jobs] delete slug=%s failed: %v", slug, err)
		return ErrInternal
	}

	u.logger.Printf("[Jobs] deleted slug=%s", slug)
	return nil
}
