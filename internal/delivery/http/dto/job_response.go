package dto

import (
	"time"

	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID              uuid.UUID `json:"_id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	Requirements    []string  `json:"requirements"`
	Location        string    `json:"location"`
	Department      string    `json:"department"`
	ExperienceLevel string    `json:"experienceLevel"`
	Type            string    `json:"type"`
	Active          bool      `json:"active"`
	CreatedAt       string    `json:"createdAt"`
	UpdatedAt       string    `json:"updatedAt"`
}

func NewJobResponse(j job.Job) JobResponse {
	reqs := j.Requirements
	if reqs == nil {
		reqs = []string{}
	}
	return JobResponse{
		ID:              j.ID,
		Title:           j.Title,
		Slug:            j.Slug,
		Description:     j.Description,
		Requirements:    reqs,
		Location:        j.Location,
		Department:      j.Department,
		ExperienceLevel: string(j.ExperienceLevel),
		Type:            string(j.Type),
		Active:          j.Active,
		CreatedAt:       formatTime(j.CreatedAt),
		UpdatedAt:       formatTime(j.UpdatedAt),
	}
}

func NewJobListResponse(items []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(items))
	for _, j := range items {
		out = append(out, NewJobResponse(j))
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
