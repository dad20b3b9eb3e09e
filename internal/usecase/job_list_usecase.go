package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"jobboard/internal/domain/job"
	"jobboard/internal/repository"
	"jobboard/internal/search"

	"golang.org/x/sync/errgroup"
)

type JobListResult struct {
	Items []job.Job
	Total int
	Page  int
	Limit int
}

type JobListUsecase interface {
	ListJobs(ctx context.Context, params search.JobQueryParams) (JobListResult, error)
	GetJobBySlug(ctx context.Context, slug string) (job.Job, error)
}

type JobList struct {
	jobs   repository.JobRepository
	logger *log.Logger
}

func NewJobListUsecase(jobs repository.JobRepository, logger *log.Logger) *JobList {
	if logger == nil {
		logger = log.Default()
	}
	return &JobList{jobs: jobs, logger: logger}
}

// ListJobs fetches one page of active jobs and, independently, the number
// of jobs matching the same filter. The two reads are not a snapshot.
func (u *JobList) ListJobs(ctx context.Context, params search.JobQueryParams) (JobListResult, error) {
	q := search.BuildJobQuery(params)

	var (
		items []job.Job
		total int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = u.jobs.List(gctx, q.Filter, q.Page.Skip, q.Page.Limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = u.jobs.Count(gctx, q.Filter)
		return err
	})
	if err := g.Wait(); err != nil {
		u.logger.Printf("[Jobs] list failed: %v", err)
		return JobListResult{}, ErrInternal
	}

	if items == nil {
		items = []job.Job{}
	}

	return JobListResult{Items: items, Total: total, Page: q.Page.Page, Limit: q.Page.Limit}, nil
}

// GetJobBySlug only sees active jobs.
func (u *JobList) GetJobBySlug(ctx context.Context, slug string) (job.Job, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return job.Job{}, ErrNotFound
	}

	j, err := u.jobs.GetBySlug(ctx, slug, true)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrNotFound
		}
		u.logger.Printf("[Jobs] get slug=%s failed: %v", slug, err)
		return job.Job{}, ErrInternal
	}
	return j, nil
}
