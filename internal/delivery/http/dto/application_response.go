package dto

import (
	"jobboard/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID          uuid.UUID `json:"_id"`
	Job         uuid.UUID `json:"job"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CoverLetter string    `json:"coverLetter,omitempty"`
	ResumeURL   string    `json:"resumeUrl,omitempty"`
	CreatedAt   string    `json:"createdAt"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	res := ApplicationResponse{
		ID:        a.ID,
		Job:       a.JobID,
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: formatTime(a.CreatedAt),
	}
	if a.CoverLetter != nil {
		res.CoverLetter = *a.CoverLetter
	}
	if a.ResumeURL != nil {
		res.ResumeURL = *a.ResumeURL
	}
	return res
}

func NewApplicationListResponse(items []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(items))
	for _, a := range items {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}
