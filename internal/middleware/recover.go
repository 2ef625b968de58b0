package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/baharkarakas/book-manager/internal/api/httpx"
	"github.com/baharkarakas/book-manager/internal/models"
)

// Recover turns a panic into the generic 500 envelope. The stack is logged only.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			slog.ErrorContext(r.Context(), "panic",
				"err", rec,
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", RequestIDFrom(r.Context()),
				"stack", string(debug.Stack()),
			)
			httpx.WriteFailure(w, models.NewInternalError())
		}()
		next.ServeHTTP(w, r)
	})
}
