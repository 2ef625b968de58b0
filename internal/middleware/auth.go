package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/baharkarakas/book-manager/internal/api/httpx"
	"github.com/baharkarakas/book-manager/internal/auth"
	"github.com/baharkarakas/book-manager/internal/metrics"
	"github.com/baharkarakas/book-manager/internal/models"
)

// TokenVerifier is satisfied by *auth.TokenManager.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

type AuthMiddleware struct {
	TV TokenVerifier
}

func NewAuthMiddleware(tv TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{TV: tv}
}

// Auth requires "Authorization: Bearer <token>". A missing header or token is
// a 401; a token that fails verification is a 403 with details.tokenError.
func (m *AuthMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ah := r.Header.Get("Authorization")
		if strings.TrimSpace(ah) == "" {
			m.reject(w, r, "missing_header", models.NewAuthenticationError("Authorization header is required"))
			return
		}
		token, ok := bearerToken(ah)
		if !ok {
			m.reject(w, r, "missing_token", models.NewAuthenticationError("Token is required"))
			return
		}

		username, err := m.TV.Verify(token)
		switch {
		case errors.Is(err, auth.ErrTokenExpired):
			m.reject(w, r, "expired", models.NewAuthorizationError("Token has expired",
				map[string]string{"tokenError": "expired"}))
			return
		case errors.Is(err, auth.ErrMissingToken):
			m.reject(w, r, "missing_token", models.NewAuthenticationError("Token is required"))
			return
		case err != nil:
			slog.DebugContext(ctx, "token rejected", "err", err)
			m.reject(w, r, "invalid", models.NewAuthorizationError("Invalid token",
				map[string]string{"tokenError": "invalid"}))
			return
		}

		metrics.AuthGateOutcomes.WithLabelValues("ok").Inc()
		next.ServeHTTP(w, r.WithContext(WithUsername(ctx, username)))
	})
}

func (m *AuthMiddleware) reject(w http.ResponseWriter, r *http.Request, outcome string, e *models.Error) {
	metrics.AuthGateOutcomes.WithLabelValues(outcome).Inc()
	slog.InfoContext(r.Context(), "auth gate rejected",
		"outcome", outcome,
		"path", r.URL.Path,
		"request_id", RequestIDFrom(r.Context()),
	)
	httpx.WriteFailure(w, e)
}

// bearerToken extracts the token of a "Bearer" header, scheme matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
