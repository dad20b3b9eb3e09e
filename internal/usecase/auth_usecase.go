package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"jobboard/internal/domain/admin"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/pkg/validation"
	ucauth "jobboard/internal/usecase/auth"
)

type LoginResult struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	Admin     admin.Admin `json:"admin"`
}

type AuthUsecase interface {
	Login(ctx context.Context, in ucauth.LoginInput) (LoginResult, error)
}

type Auth struct {
	authSvc *ucauth.Service
	jwt     jwt.Service
	logger  *log.Logger
}

func NewAuthUsecase(admins admin.Repository, jwtSvc jwt.Service, logger *log.Logger) *Auth {
	if logger == nil {
		logger = log.Default()
	}
	return &Auth{authSvc: ucauth.NewService(admins), jwt: jwtSvc, logger: logger}
}

// Login moves a caller from anonymous to admin: valid credentials buy a
// signed token asserting the admin role until it expires.
func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (LoginResult, error) {
	in.Email = ucauth.NormalizeEmail(in.Email)
	if err := validation.Struct(in); err != nil {
		return LoginResult{}, err
	}

	a, err := u.authSvc.Login(ctx, in)
	if err != nil {
		if errors.Is(err, ucauth.ErrInvalidCredentials) {
			u.logger.Printf("[Auth] login rejected email=%s", in.Email)
			return LoginResult{}, ErrUnauthorized
		}
		u.logger.Printf("[Auth] login failed email=%s: %v", in.Email, err)
		return LoginResult{}, ErrInternal
	}

	tok, exp, err := u.jwt.GenerateToken(a.ID.String(), admin.Role)
	if err != nil {
		u.logger.Printf("[Auth] sign token failed: %v", err)
		return LoginResult{}, ErrInternal
	}

	return LoginResult{Token: tok, ExpiresAt: exp, Admin: a}, nil
}
