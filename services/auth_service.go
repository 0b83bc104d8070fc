package services

import (
	"context"
	"strings"
	"time"

	"rent-reminder-backend/models"
	"rent-reminder-backend/repositories"
	"rent-reminder-backend/utils"
)

type LoginResult struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresIn   int64         `json:"expires_in"`
	User        *models.Admin `json:"user"`
}

type AuthService struct {
	admins    repositories.AdminRepository
	jwtSecret string
	expiry    time.Duration
	clock     Clock
}

func NewAuthService(admins repositories.AdminRepository, jwtSecret string, expiry time.Duration, clock Clock) *AuthService {
	return &AuthService{admins: admins, jwtSecret: jwtSecret, expiry: expiry, clock: clock}
}

// Login checks the credentials and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, invalid("credentials", "username and password are required")
	}

	admin, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		return nil, storageErr("find admin", err)
	}
	if admin == nil || !utils.CheckPasswordHash(password, admin.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(s.jwtSecret, admin.ID, admin.Username, s.expiry)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if err := s.admins.TouchLastLogin(ctx, admin.ID, now); err != nil {
		return nil, storageErr("update last login", err)
	}
	admin.LastLogin = &now

	return &LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.expiry.Seconds()),
		User:        admin,
	}, nil
}
