package job

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type ExperienceLevel string

const (
	ExperienceJunior ExperienceLevel = "junior"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
	ExperienceLead   ExperienceLevel = "lead"
)

type EmploymentType string

const (
	TypeFullTime   EmploymentType = "full-time"
	TypePartTime   EmploymentType = "part-time"
	TypeContract   EmploymentType = "contract"
	TypeInternship EmploymentType = "internship"
	TypeRemote     EmploymentType = "remote"
)

var ExperienceLevels = []ExperienceLevel{ExperienceJunior, ExperienceMid, ExperienceSenior, ExperienceLead}

var EmploymentTypes = []EmploymentType{TypeFullTime, TypePartTime, TypeContract, TypeInternship, TypeRemote}

func (l ExperienceLevel) Valid() bool { return slices.Contains(ExperienceLevels, l) }

func (t EmploymentType) Valid() bool { return slices.Contains(EmploymentTypes, t) }

// Job is a posted position. Slug is the public identifier; ID never leaves
// the API except as the reference applications carry.
type Job struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Slug            string          `json:"slug"`
	Description     string          `json:"description"`
	Requirements    []string        `json:"requirements"`
	Location        string          `json:"location"`
	Department      string          `json:"department"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	Type            EmploymentType  `json:"type"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
