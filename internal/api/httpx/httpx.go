package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/baharkarakas/book-manager/internal/api/validate"
	"github.com/baharkarakas/book-manager/internal/models"
)

// TimestampLayout is UTC ISO-8601 with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type Success struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
}

type Failure struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
}

type APIError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Details    any    `json:"details"`
	Timestamp  string `json:"timestamp"`
}

func Timestamp() string {
	return time.Now().UTC().Format(TimestampLayout)
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteSuccess(w http.ResponseWriter, status int, msg string, data any) {
	WriteJSON(w, status, Success{
		Success:   true,
		Message:   msg,
		Data:      data,
		Timestamp: Timestamp(),
	})
}

// WriteFailure writes the error envelope for a known failure.
func WriteFailure(w http.ResponseWriter, e *models.Error) {
	status := e.StatusCode
	if status == 0 {
		status = e.Kind.StatusCode()
	}
	WriteJSON(w, status, Failure{
		Success: false,
		Error: APIError{
			Message:    e.Message,
			StatusCode: status,
			Details:    e.Details,
			Timestamp:  Timestamp(),
		},
	})
}

// WriteError answers with the envelope of a *models.Error found in err's chain.
// Anything else is logged in full and answered with a generic 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *models.Error
	if errors.As(err, &appErr) && appErr.Kind != models.KindInternal {
		WriteFailure(w, appErr)
		return
	}
	slog.ErrorContext(r.Context(), "unhandled error",
		"err", err,
		"method", r.Method,
		"path", r.URL.Path,
	)
	WriteFailure(w, models.NewInternalError())
}

// DecodeJSON reads a single JSON value from the body, capped at 1MB.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return models.NewValidationError("Invalid JSON body", validate.Errs{{Field: "body", Msg: err.Error()}})
	}
	if dec.More() {
		return models.NewValidationError("Invalid JSON body", validate.Errs{{Field: "body", Msg: "body must only contain a single JSON value"}})
	}
	return nil
}
