package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"jobboard/internal/domain/application"
	"jobboard/internal/pkg/validation"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

const (
	RecentApplicationsLimit = 200
	DefaultMaxResumeBytes   = 5 * 1024 * 1024
	ResumeURLPrefix         = "/api/applications/resumes/"
)

type ApplicationInput struct {
	Job         string `json:"job" validate:"required"`
	Name        string `json:"name" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	CoverLetter string `json:"coverLetter" validate:"omitempty,max=5000"`
}

// ResumeUpload is an uploaded file, already fully read into memory.
type ResumeUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     []byte
}

type ApplicationUsecase interface {
	CreateApplication(ctx context.Context, in ApplicationInput, resume *ResumeUpload) (application.Application, error)
	ListApplications(ctx context.Context) ([]application.Application, error)
	GetResume(ctx context.Context, key string) (application.Resume, error)
	ExportApplicationsXLSX(ctx context.Context) ([]byte, error)
}

type Applications struct {
	apps      repository.ApplicationRepository
	jobs      repository.JobRepository
	resumes   repository.ResumeRepository
	maxResume int64
	logger    *log.Logger
	now       func() time.Time
}

func NewApplicationUsecase(
	apps repository.ApplicationRepository,
	jobs repository.JobRepository,
	resumes repository.ResumeRepository,
	maxResumeBytes int64,
	logger *log.Logger,
) *Applications {
	if maxResumeBytes <= 0 {
		maxResumeBytes = DefaultMaxResumeBytes
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Applications{
		apps:      apps,
		jobs:      jobs,
		resumes:   resumes,
		maxResume: maxResumeBytes,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateApplication validates the submission, requires the referenced job
// to exist, stores the resume (if any) as its own object and then the
// application pointing at it.
func (u *Applications) CreateApplication(ctx context.Context, in ApplicationInput, resume *ResumeUpload) (application.Application, error) {
	in.Job = strings.TrimSpace(in.Job)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.CoverLetter = strings.TrimSpace(in.CoverLetter)

	if err := u.validate(in, resume); err != nil {
		return application.Application{}, err
	}

	jobID, err := uuid.Parse(in.Job)
	if err != nil {
		return application.Application{}, ErrNotFound
	}
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return application.Application{}, ErrNotFound
		}
		u.logger.Printf("[Applications] job lookup id=%s failed: %v", jobID, err)
		return application.Application{}, ErrInternal
	}

	now := u.now().UTC()
	a := application.Application{
		ID:        uuid.New(),
		JobID:     j.ID,
		Name:      in.Name,
		Email:     in.Email,
		CreatedAt: now,
	}
	if in.CoverLetter != "" {
		cl := in.CoverLetter
		a.CoverLetter = &cl
	}

	var resumeKey uuid.UUID
	if resume != nil {
		resumeKey = uuid.New()
		contentType := strings.TrimSpace(resume.ContentType)
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		if err := u.resumes.Put(ctx, application.Resume{
			ID:          resumeKey,
			Filename:    resume.Filename,
			ContentType: contentType,
			Size:        int64(len(resume.Content)),
			Content:     resume.Content,
			CreatedAt:   now,
		}); err != nil {
			u.logger.Printf("[Applications] store resume failed: %v", err)
			return application.Application{}, ErrInternal
		}
		url := ResumeURLPrefix + resumeKey.String()
		a.ResumeKey = &resumeKey
		a.ResumeURL = &url
	}

	created, err := u.apps.Create(ctx, a)
	if err != nil {
		u.logger.Printf("[Applications] create job=%s failed: %v", j.ID, err)
		if resume != nil {
			if derr := u.resumes.Delete(ctx, resumeKey); derr != nil {
				u.logger.Printf("[Applications] orphaned resume key=%s: %v", resumeKey, derr)
			}
		}
		return application.Application{}, ErrInternal
	}

	return created, nil
}

func (u *Applications) validate(in ApplicationInput, resume *ResumeUpload) error {
	var fields []validation.FieldError

	if err := validation.Struct(in); err != nil {
		var verr *validation.Error
		if !errors.As(err, &verr) {
			return err
		}
		fields = append(fields, verr.Fields...)
	}

	if resume != nil {
		size := resume.Size
		if n := int64(len(resume.Content)); n > size {
			size = n
		}
		if size > u.maxResume {
			fields = append(fields, validation.FieldError{
				Field:   "resume",
				Message: fmt.Sprintf("must be at most %s", humanBytes(u.maxResume)),
			})
		}
	}

	if len(fields) > 0 {
		return &validation.Error{Fields: fields}
	}
	return nil
}

func (u *Applications) ListApplications(ctx context.Context) ([]application.Application, error) {
	items, err := u.apps.ListRecent(ctx, RecentApplicationsLimit)
	if err != nil {
		u.logger.Printf("[Applications] list failed: %v", err)
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Applications) GetResume(ctx context.Context, key string) (application.Resume, error) {
	id, err := uuid.Parse(strings.TrimSpace(key))
	if err != nil {
		return application.Resume{}, ErrNotFound
	}
	res, err := u.resumes.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return application.Resume{}, ErrNotFound
		}
		u.logger.Printf("[Applications] resume key=%s failed: %v", id, err)
		return application.Resume{}, ErrInternal
	}
	return res, nil
}

func humanBytes(n int64) string {
	const mb = 1024 * 1024
	if n%mb == 0 {
		return fmt.Sprintf("%dMB", n/mb)
	}
	return fmt.Sprintf("%d bytes", n)
}
