package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/baharkarakas/book-manager/internal/models"
)

type Config struct {
	Env             string        `env:"APP_ENV" envDefault:"dev" validate:"oneof=dev test prod"`
	HTTPPort        string        `env:"HTTP_PORT" envDefault:"8080" validate:"required,numeric"`
	APIBasePath     string        `env:"API_BASE_PATH" validate:"basepath"`
	JWTSecret       string        `env:"JWT_SECRET" envDefault:"secret123" validate:"required"`
	JWTIssuer       string        `env:"JWT_ISSUER" envDefault:"book-manager" validate:"required"`
	TokenTTL        time.Duration `env:"TOKEN_TTL" envDefault:"1h" validate:"gt=0"`
	AuthUsers       string        `env:"AUTH_USERS" envDefault:"admin:secret1" validate:"credentials"`
	CORSOrigins     []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:"," validate:"min=1,dive,required"`
	LogLevel        string        `env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
	WebEnabled      bool          `env:"WEB_ENABLED" envDefault:"true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}

type LoadOption func(*loadOptions)

type loadOptions struct {
	dotenvFiles []string
}

// WithDotenv replaces the list of .env files read before the environment.
// Pass nothing to skip .env loading.
func WithDotenv(files ...string) LoadOption {
	return func(o *loadOptions) {
		o.dotenvFiles = files
	}
}

// Load reads .env (if present), then the environment, then validates.
// Variables already set in the environment win over .env.
func Load(opts ...LoadOption) (Config, error) {
	o := &loadOptions{dotenvFiles: []string{".env"}}
	for _, opt := range opts {
		opt(o)
	}
	for _, f := range o.dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		} else if err == nil {
			slog.Debug("loaded dotenv file", "file", f)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.APIBasePath = strings.TrimRight(cfg.APIBasePath, "/")
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	v := validator.New()
	if err := v.RegisterValidation("basepath", validateBasePath); err != nil {
		return err
	}
	if err := v.RegisterValidation("credentials", validateCredentials); err != nil {
		return err
	}
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c Config) Addr() string { return ":" + c.HTTPPort }

// Level is LOG_LEVEL, defaulting to debug in dev and info elsewhere.
func (c Config) Level() string {
	if c.LogLevel != "" {
		return c.LogLevel
	}
	if c.Env == "dev" {
		return "debug"
	}
	return "info"
}

// Credentials parses AUTH_USERS ("user:pass,user2:pass2").
func (c Config) Credentials() []models.Credential {
	creds, _ := parseCredentials(c.AuthUsers)
	return creds
}

func parseCredentials(s string) ([]models.Credential, error) {
	var out []models.Credential
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		user, pass, ok := strings.Cut(entry, ":")
		if !ok || user == "" || pass == "" {
			return nil, fmt.Errorf("malformed credential entry %q", entry)
		}
		out = append(out, models.Credential{Username: user, Password: pass})
	}
	if len(out) == 0 {
		return nil, errors.New("no credentials")
	}
	return out, nil
}

func validateCredentials(fl validator.FieldLevel) bool {
	_, err := parseCredentials(fl.Field().String())
	return err == nil
}

// "" or "/api", no trailing slash, no whitespace.
func validateBasePath(fl validator.FieldLevel) bool {
	p := fl.Field().String()
	if p == "" {
		return true
	}
	return strings.HasPrefix(p, "/") && !strings.HasSuffix(p, "/") && !strings.ContainsAny(p, " \t\n?#")
}
