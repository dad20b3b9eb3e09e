// Package mockdata serves a fixed set of demo jobs that needs no store.
package mockdata

import (
	_ "embed"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"jobboard/internal/pkg/validation"
)

var ErrJobNotFound = errors.New("mock job not found")

//go:embed jobs.json
var jobsJSON []byte

type Job struct {
	ID                  string    `json:"_id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Requirements        []string  `json:"requirements"`
	Responsibilities    []string  `json:"responsibilities"`
	Location            string    `json:"location"`
	Type                string    `json:"type"`
	Department          string    `json:"department"`
	Experience          string    `json:"experience"`
	Salary              string    `json:"salary"`
	Benefits            []string  `json:"benefits"`
	ApplicationDeadline time.Time `json:"applicationDeadline"`
	Active              bool      `json:"isActive"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Filter fields are optional. Search looks at title, description and
// requirements; Location is a substring; the rest match exactly.
type Filter struct {
	Search     string
	Type       string
	Location   string
	Department string
	Experience string
}

type ApplicationInput struct {
	JobID       string `json:"jobId" validate:"required,notblank"`
	Name        string `json:"name" validate:"required,notblank"`
	Email       string `json:"email" validate:"required,notblank"`
	Phone       string `json:"phone"`
	CoverLetter string `json:"coverLetter"`
}

// Application echoes a submission. Nothing is stored.
type Application struct {
	ID          string    `json:"_id"`
	JobID       string    `json:"jobId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CoverLetter string    `json:"coverLetter"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
}

const StatusSubmitted = "submitted"

var (
	loadOnce sync.Once
	loaded   []Job
	loadErr  error
)

func all() []Job {
	loadOnce.Do(func() {
		loadErr = json.Unmarshal(jobsJSON, &loaded)
	})
	if loadErr != nil {
		panic("mockdata: bad embedded jobs: " + loadErr.Error())
	}
	return loaded
}

type Catalog struct {
	jobs []Job
	now  func() time.Time
}

func NewCatalog() *Catalog {
	return &Catalog{jobs: all(), now: time.Now}
}

func (c *Catalog) List(f Filter) []Job {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	location := strings.ToLower(strings.TrimSpace(f.Location))

	out := make([]Job, 0, len(c.jobs))
	for _, j := range c.jobs {
		if search != "" && !matchesSearch(j, search) {
			continue
		}
		if f.Type != "" && j.Type != f.Type {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(j.Location), location) {
			continue
		}
		if f.Department != "" && j.Department != f.Department {
			continue
		}
		if f.Experience != "" && j.Experience != f.Experience {
			continue
		}
		out = append(out, j)
	}
	return out
}

func matchesSearch(j Job, term string) bool {
	if strings.Contains(strings.ToLower(j.Title), term) || strings.Contains(strings.ToLower(j.Description), term) {
		return true
	}
	for _, r := range j.Requirements {
		if strings.Contains(strings.ToLower(r), term) {
			return true
		}
	}
	return false
}

func (c *Catalog) Get(id string) (Job, error) {
	id = strings.TrimSpace(id)
	for _, j := range c.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return Job{}, ErrJobNotFound
}

// Submit checks the required fields and that the job exists, then returns
// what a stored application would look like.
func (c *Catalog) Submit(in ApplicationInput) (Application, error) {
	if err := validation.Struct(in); err != nil {
		return Application{}, err
	}
	if _, err := c.Get(in.JobID); err != nil {
		return Application{}, err
	}

	now := c.now().UTC()
	return Application{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		JobID:       strings.TrimSpace(in.JobID),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		CoverLetter: in.CoverLetter,
		Status:      StatusSubmitted,
		SubmittedAt: now,
	}, nil
}
