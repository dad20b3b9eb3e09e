package mockdata

import (
	"errors"
	"testing"
	"time"

	"jobboard/internal/pkg/validation"
)

func TestCatalog_ListAll(t *testing.T) {
	if got := len(NewCatalog().List(Filter{})); got != 6 {
		t.Fatalf("expected 6 jobs, got %d", got)
	}
}

func TestCatalog_ListFilters(t *testing.T) {
	c := NewCatalog()

	cases := []struct {
		name string
		f    Filter
		want []string
	}{
		{"search title", Filter{Search: "devops"}, []string{"5"}},
		{"search requirements", Filter{Search: "FIGMA"}, []string{"2"}},
		{"location substring", Filter{Location: "remote"}, []string{"3"}},
		{"department", Filter{Department: "Engineering"}, []string{"1", "3", "5"}},
		{"experience and department", Filter{Department: "Engineering", Experience: "Senior"}, []string{"1"}},
		{"type is exact", Filter{Type: "full-time"}, nil},
		{"no match", Filter{Search: "astronaut"}, nil},
	}

	for _, tc := range cases {
		got := c.List(tc.f)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: expected %d jobs, got %d", tc.name, len(tc.want), len(got))
		}
		for i, id := range tc.want {
			if got[i].ID != id {
				t.Fatalf("%s: expected id %s at %d, got %s", tc.name, id, i, got[i].ID)
			}
		}
	}
}

func TestCatalog_Get(t *testing.T) {
	c := NewCatalog()
	j, err := c.Get("4")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if j.Title != "Product Manager" {
		t.Fatalf("unexpected job %q", j.Title)
	}
	if _, err := c.Get("99"); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestCatalog_Submit(t *testing.T) {
	c := NewCatalog()
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return fixed }

	app, err := c.Submit(ApplicationInput{JobID: "1", Name: "Grace", Email: "grace@example.com"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if app.Status != StatusSubmitted || !app.SubmittedAt.Equal(fixed) || app.ID == "" {
		t.Fatalf("unexpected application %+v", app)
	}

	if _, err := c.Submit(ApplicationInput{JobID: "1", Name: "Grace"}); !errors.Is(err, validation.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := c.Submit(ApplicationInput{JobID: "42", Name: "Grace", Email: "g@example.com"}); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}
