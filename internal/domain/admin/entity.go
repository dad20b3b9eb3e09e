package admin

import (
	"time"

	"github.com/google/uuid"
)

// Role is the only role an admin token may carry.
const Role = "admin"

type Admin struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
