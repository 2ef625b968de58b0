package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/baharkarakas/book-manager/internal/api/validate"
	"github.com/baharkarakas/book-manager/internal/auth"
	"github.com/baharkarakas/book-manager/internal/metrics"
	"github.com/baharkarakas/book-manager/internal/models"
	repo "github.com/baharkarakas/book-manager/internal/repository"
)

const msgInvalidCredentials = "Invalid username or password"

type LoginResult struct {
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	ExpiresIn string      `json:"expiresIn"`
}

type AuthService struct {
	creds repo.Credentials
	tm    *auth.TokenManager
}

func NewAuthService(creds repo.Credentials, tm *auth.TokenManager) *AuthService {
	return &AuthService{creds: creds, tm: tm}
}

// Login validates the payload, then checks it against the credential set.
// A wrong username and a wrong password fail the same way.
func (s *AuthService) Login(ctx context.Context, p models.LoginPayload) (res LoginResult, err error) {
	defer func() {
		metrics.LoginAttempts.WithLabelValues(metrics.Outcome(err)).Inc()
	}()

	if vErr := p.Validate(); vErr != nil {
		if errs, ok := validate.Collect(vErr, models.LoginFields...); ok {
			return LoginResult{}, models.NewValidationError("Validation failed", errs)
		}
		return LoginResult{}, fmt.Errorf("validate login: %w", vErr)
	}

	username, password := p.Values()
	c, ok := s.creds.Lookup(ctx, username)
	if !ok || !auth.MatchPassword(c.Password, password) {
		slog.WarnContext(ctx, "login rejected", "username", username)
		return LoginResult{}, models.NewAuthenticationError(msgInvalidCredentials)
	}

	tok, _, err := s.tm.Issue(c.Username)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}
	slog.InfoContext(ctx, "login ok", "username", c.Username)
	return LoginResult{
		Token:     tok,
		User:      models.User{Username: c.Username},
		ExpiresIn: s.tm.ExpiresIn(),
	}, nil
}
