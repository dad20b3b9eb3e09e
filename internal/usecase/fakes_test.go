package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"sort"
	"strings"
	"sync"

	"jobboard/internal/domain/admin"
	"jobboard/internal/domain/application"
	"jobboard/internal/domain/job"
	"jobboard/internal/repository"
	"jobboard/internal/search"

	"github.com/google/uuid"
)

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

type memJobRepo struct {
	mu    sync.Mutex
	items []job.Job
	err   error
}

func (m *memJobRepo) Create(_ context.Context, j job.Job) (job.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return job.Job{}, m.err
	}
	for _, it := range m.items {
		if it.Slug == j.Slug {
			return job.Job{}, repository.ErrDuplicateSlug
		}
	}
	m.items = append(m.items, j)
	return j, nil
}

func (m *memJobRepo) GetBySlug(_ context.Context, slug string, activeOnly bool) (job.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if it.Slug == slug && (!activeOnly || it.Active) {
			return it, nil
		}
	}
	return job.Job{}, repository.ErrJobNotFound
}

func (m *memJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return job.Job{}, m.err
	}
	for _, it := range m.items {
		if it.ID == id {
			return it, nil
		}
	}
	return job.Job{}, repository.ErrJobNotFound
}

func (m *memJobRepo) FindByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]job.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[uuid.UUID]job.Job)
	for _, id := range ids {
		for _, it := range m.items {
			if it.ID == id {
				out[id] = it
			}
		}
	}
	return out, nil
}

func (m *memJobRepo) Update(_ context.Context, slug string, in repository.JobUpdate) (job.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := -1
	for i, it := range m.items {
		if it.Slug == slug {
			idx = i
		} else if it.Slug == in.Slug {
			return job.Job{}, repository.ErrDuplicateSlug
		}
	}
	if idx < 0 {
		return job.Job{}, repository.ErrJobNotFound
	}
	j := m.items[idx]
	j.Title = in.Title
	j.Slug = in.Slug
	j.Description = in.Description
	j.Requirements = in.Requirements
	j.Location = in.Location
	j.Department = in.Department
	j.ExperienceLevel = in.ExperienceLevel
	j.Type = in.Type
	if in.Active != nil {
		j.Active = *in.Active
	}
	j.UpdatedAt = in.UpdatedAt
	m.items[idx] = j
	return j, nil
}

func (m *memJobRepo) DeleteBySlug(_ context.Context, slug string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.items {
		if it.Slug == slug {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrJobNotFound
}

func (m *memJobRepo) matching(f search.JobFilter) []job.Job {
	out := make([]job.Job, 0, len(m.items))
	for _, it := range m.items {
		if f.ActiveOnly && !it.Active {
			continue
		}
		if f.Text != "" && !strings.Contains(strings.ToLower(it.Title+" "+it.Description), strings.ToLower(f.Text)) {
			continue
		}
		if f.Type != "" && string(it.Type) != f.Type {
			continue
		}
		if f.Department != "" && it.Department != f.Department {
			continue
		}
		if f.ExperienceLevel != "" && string(it.ExperienceLevel) != f.ExperienceLevel {
			continue
		}
		if f.LocationContains != "" && !strings.Contains(strings.ToLower(it.Location), strings.ToLower(f.LocationContains)) {
			continue
		}
		out = append(out, it)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (m *memJobRepo) List(_ context.Context, f search.JobFilter, skip, limit int) ([]job.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	all := m.matching(f)
	if skip >= len(all) {
		return []job.Job{}, nil
	}
	end := skip + limit
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], nil
}

func (m *memJobRepo) Count(_ context.Context, f search.JobFilter) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	return len(m.matching(f)), nil
}

type memApplicationRepo struct {
	items []application.Application
	err   error
}

func (m *memApplicationRepo) Create(_ context.Context, a application.Application) (application.Application, error) {
	if m.err != nil {
		return application.Application{}, m.err
	}
	m.items = append(m.items, a)
	return a, nil
}

func (m *memApplicationRepo) ListRecent(_ context.Context, limit int) ([]application.Application, error) {
	out := make([]application.Application, len(m.items))
	copy(out, m.items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memResumeRepo struct {
	items map[uuid.UUID]application.Resume
}

func newMemResumeRepo() *memResumeRepo {
	return &memResumeRepo{items: make(map[uuid.UUID]application.Resume)}
}

func (m *memResumeRepo) Put(_ context.Context, r application.Resume) error {
	m.items[r.ID] = r
	return nil
}

func (m *memResumeRepo) Get(_ context.Context, id uuid.UUID) (application.Resume, error) {
	r, ok := m.items[id]
	if !ok {
		return application.Resume{}, repository.ErrResumeNotFound
	}
	return r, nil
}

func (m *memResumeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.items, id)
	return nil
}

type memAdminRepo struct {
	items map[string]admin.Admin
	err   error
}

func (m *memAdminRepo) GetByEmail(_ context.Context, email string) (admin.Admin, error) {
	if m.err != nil {
		return admin.Admin{}, m.err
	}
	a, ok := m.items[email]
	if !ok {
		return admin.Admin{}, admin.ErrNotFound
	}
	return a, nil
}

func (m *memAdminRepo) Upsert(_ context.Context, a admin.Admin) error {
	if m.items == nil {
		m.items = make(map[string]admin.Admin)
	}
	m.items[a.Email] = a
	return nil
}

var errStoreDown = errors.New("store down")
