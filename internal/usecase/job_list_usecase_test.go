package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/search"

	"github.com/google/uuid"
)

func seedJobs(n int, active bool) []job.Job {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]job.Job, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, job.Job{
			ID:              uuid.New(),
			Title:           fmt.Sprintf("Role %d", i),
			Slug:            fmt.Sprintf("role-%d-%t", i, active),
			Description:     "A role on the team.",
			Requirements:    []string{"Go"},
			Location:        "Remote",
			Department:      "Engineering",
			ExperienceLevel: job.ExperienceMid,
			Type:            job.TypeFullTime,
			Active:          active,
			CreatedAt:       base.Add(time.Duration(i) * time.Minute),
			UpdatedAt:       base.Add(time.Duration(i) * time.Minute),
		})
	}
	return out
}

func TestJobList_LimitIsClamped(t *testing.T) {
	repo := &memJobRepo{items: seedJobs(150, true)}
	uc := NewJobListUsecase(repo, quietLogger())

	res, err := uc.ListJobs(context.Background(), search.JobQueryParams{Limit: "200"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Items) != search.MaxLimit || res.Limit != search.MaxLimit {
		t.Fatalf("expected %d items, got %d (limit %d)", search.MaxLimit, len(res.Items), res.Limit)
	}
	if res.Total != 150 {
		t.Fatalf("expected total 150, got %d", res.Total)
	}
}

func TestJobList_NonPositivePageIsFirstPage(t *testing.T) {
	repo := &memJobRepo{items: seedJobs(20, true)}
	uc := NewJobListUsecase(repo, quietLogger())

	first, err := uc.ListJobs(context.Background(), search.JobQueryParams{Page: "1"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, p := range []string{"0", "-3", "abc"} {
		res, err := uc.ListJobs(context.Background(), search.JobQueryParams{Page: p})
		if err != nil {
			t.Fatalf("page=%s: unexpected err: %v", p, err)
		}
		if res.Page != 1 || len(res.Items) != len(first.Items) || res.Items[0].ID != first.Items[0].ID {
			t.Fatalf("page=%s: expected first page", p)
		}
	}
}

func TestJobList_OnlyActiveAndNewestFirst(t *testing.T) {
	items := append(seedJobs(3, true), seedJobs(2, false)...)
	uc := NewJobListUsecase(&memJobRepo{items: items}, quietLogger())

	res, err := uc.ListJobs(context.Background(), search.JobQueryParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Total != 3 || len(res.Items) != 3 {
		t.Fatalf("expected 3 active jobs, got total=%d items=%d", res.Total, len(res.Items))
	}
	for i := 1; i < len(res.Items); i++ {
		if res.Items[i].CreatedAt.After(res.Items[i-1].CreatedAt) {
			t.Fatalf("expected newest first")
		}
	}
}

func TestJobList_PageBeyondEnd(t *testing.T) {
	uc := NewJobListUsecase(&memJobRepo{items: seedJobs(5, true)}, quietLogger())

	res, err := uc.ListJobs(context.Background(), search.JobQueryParams{Page: "9"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Items == nil || len(res.Items) != 0 || res.Total != 5 {
		t.Fatalf("expected empty page with total 5, got %+v", res)
	}
}

func TestJobList_StoreError(t *testing.T) {
	uc := NewJobListUsecase(&memJobRepo{err: errStoreDown}, quietLogger())
	if _, err := uc.ListJobs(context.Background(), search.JobQueryParams{}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestJobList_GetBySlugHidesInactive(t *testing.T) {
	items := append(seedJobs(1, true), seedJobs(1, false)...)
	uc := NewJobListUsecase(&memJobRepo{items: items}, quietLogger())

	if _, err := uc.GetJobBySlug(context.Background(), items[0].Slug); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.GetJobBySlug(context.Background(), items[1].Slug); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for inactive job, got %v", err)
	}
	if _, err := uc.GetJobBySlug(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
