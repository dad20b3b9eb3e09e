package application

import (
	"time"

	"github.com/google/uuid"
)

// Application is immutable once stored. JobID is not enforced by the store,
// so it may point at a job that has since been deleted.
type Application struct {
	ID          uuid.UUID  `json:"id"`
	JobID       uuid.UUID  `json:"job"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	CoverLetter *string    `json:"coverLetter,omitempty"`
	ResumeKey   *uuid.UUID `json:"resumeKey,omitempty"`
	ResumeURL   *string    `json:"resumeUrl,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Resume is the uploaded file behind Application.ResumeKey.
type Resume struct {
	ID          uuid.UUID
	Filename    string
	ContentType string
	Size        int64
	Content     []byte
	CreatedAt   time.Time
}
