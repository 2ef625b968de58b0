package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/book-manager/internal/models"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(WithDotenv())
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "", cfg.APIBasePath)
	assert.Equal(t, "secret123", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "debug", cfg.Level())
	assert.True(t, cfg.WebEnabled)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []models.Credential{{Username: "admin", Password: "secret1"}}, cfg.Credentials())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("API_BASE_PATH", "/api/")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("AUTH_USERS", "admin:secret1, editor:pa:ss")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://books.example.com")

	cfg, err := Load(WithDotenv())
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "/api", cfg.APIBasePath)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "info", cfg.Level())
	assert.Equal(t, []string{"http://localhost:3000", "https://books.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, []models.Credential{
		{Username: "admin", Password: "secret1"},
		{Username: "editor", Password: "pa:ss"},
	}, cfg.Credentials())
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string][2]string{
		"env":        {"APP_ENV", "staging"},
		"port":       {"HTTP_PORT", "eighty"},
		"base path":  {"API_BASE_PATH", "api"},
		"ttl":        {"TOKEN_TTL", "0s"},
		"users":      {"AUTH_USERS", "admin"},
		"empty pass": {"AUTH_USERS", "admin:"},
		"log level":  {"LOG_LEVEL", "verbose"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Load(WithDotenv())
			assert.Error(t, err)
		})
	}
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("JWT_ISSUER=from-dotenv\nHTTP_PORT=7000\n"), 0o600))
	t.Setenv("HTTP_PORT", "7100")
	// godotenv sets variables process-wide; make sure the test cleans up.
	t.Setenv("JWT_ISSUER", "")
	require.NoError(t, os.Unsetenv("JWT_ISSUER"))

	cfg, err := Load(WithDotenv(file, filepath.Join(dir, "missing.env")))
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.JWTIssuer)
	assert.Equal(t, "7100", cfg.HTTPPort, "the real environment wins")
}
