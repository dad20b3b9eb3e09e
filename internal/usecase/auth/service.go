package auth

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"jobboard/internal/domain/admin"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternal           = errors.New("internal error")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
)

const MinPasswordLength = 6

// PasswordCost is the bcrypt cost of stored admin hashes.
const PasswordCost = bcrypt.DefaultCost

// Compared against when the email is unknown so both failure paths cost one
// bcrypt comparison at PasswordCost.
var dummyHash = sync.OnceValue(func() []byte {
	b, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), PasswordCost)
	return b
})

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Service checks admin credentials against the admins store.
type Service struct {
	admins admin.Repository
}

func NewService(admins admin.Repository) *Service {
	return &Service{admins: admins}
}

func (s *Service) Login(ctx context.Context, in LoginInput) (admin.Admin, error) {
	email := NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return admin.Admin{}, ErrInvalidCredentials
	}

	a, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, admin.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(in.Password))
			return admin.Admin{}, ErrInvalidCredentials
		}
		return admin.Admin{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.Password)); err != nil {
		return admin.Admin{}, ErrInvalidCredentials
	}

	return sanitizeAdmin(a), nil
}

// HashPassword is used by the seeder to provision admins.
func HashPassword(pw string) (string, error) {
	if len(strings.TrimSpace(pw)) < MinPasswordLength {
		return "", ErrWeakPassword
	}
	b, err := bcrypt.GenerateFromPassword([]byte(pw), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitizeAdmin(a admin.Admin) admin.Admin {
	a.PasswordHash = ""
	return a
}
