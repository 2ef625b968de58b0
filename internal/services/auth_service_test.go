package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/book-manager/internal/api/validate"
	"github.com/baharkarakas/book-manager/internal/auth"
	"github.com/baharkarakas/book-manager/internal/models"
	"github.com/baharkarakas/book-manager/internal/repository/memory"
)

func newAuthService(t *testing.T) (*AuthService, *auth.TokenManager) {
	t.Helper()
	hash, err := auth.HashPassword("hashed-secret")
	require.NoError(t, err)
	creds := memory.NewCredentials([]models.Credential{
		{Username: "admin", Password: "secret1"},
		{Username: "editor", Password: hash},
	})
	tm := auth.NewTokenManager("secret123", "book-manager", time.Hour)
	return NewAuthService(creds, tm), tm
}

func TestLoginOK(t *testing.T) {
	s, tm := newAuthService(t)

	res, err := s.Login(context.Background(), models.LoginPayload{Username: "admin", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "admin", res.User.Username)
	assert.Equal(t, "1h", res.ExpiresIn)

	username, err := tm.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestLoginHashedCredential(t *testing.T) {
	s, _ := newAuthService(t)
	_, err := s.Login(context.Background(), models.LoginPayload{Username: "editor", Password: "hashed-secret"})
	assert.NoError(t, err)
}

func TestLoginRejected(t *testing.T) {
	s, _ := newAuthService(t)
	for _, p := range []models.LoginPayload{
		{Username: "admin", Password: "wrong-pass"},
		{Username: "nobody", Password: "secret1"},
		{Username: "Admin", Password: "secret1"},
	} {
		_, err := s.Login(context.Background(), p)
		var e *models.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, models.KindAuthentication, e.Kind)
		assert.Equal(t, "Invalid username or password", e.Message)
	}
}

func TestLoginValidation(t *testing.T) {
	s, _ := newAuthService(t)
	cases := []struct {
		name   string
		p      models.LoginPayload
		fields []string
	}{
		{"short username", models.LoginPayload{Username: "ab", Password: "123456"}, []string{"username"}},
		{"short password", models.LoginPayload{Username: "admin", Password: "12345"}, []string{"password"}},
		{"missing both", models.LoginPayload{}, []string{"username", "password"}},
		{"wrong types", models.LoginPayload{Username: 123.0, Password: true}, []string{"username", "password"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := s.Login(context.Background(), c.p)
			var e *models.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, models.KindValidation, e.Kind)
			assert.Equal(t, c.fields, e.Details.(validate.Errs).Fields())
		})
	}
}
