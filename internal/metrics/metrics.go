package metrics

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/baharkarakas/book-manager/internal/models"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Books
	BookOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "book_operations_total",
			Help: "Book operations by outcome",
		},
		[]string{"operation", "outcome"}, // list|get|create|update|delete
	)
	BooksStored = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "books_stored",
			Help: "Number of books currently in the store",
		},
	)

	// Auth
	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Login attempts by outcome",
		},
		[]string{"outcome"},
	)
	AuthGateOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_gate_outcomes_total",
			Help: "Bearer token checks by outcome",
		},
		[]string{"outcome"}, // ok|missing_header|missing_token|expired|invalid
	)

	initOnce sync.Once
)

// /metrics endpoint handler
var Handler = promhttp.Handler

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestsTotal)
		prometheus.MustRegister(BookOperations)
		prometheus.MustRegister(BooksStored)
		prometheus.MustRegister(LoginAttempts)
		prometheus.MustRegister(AuthGateOutcomes)
	})
}

// Outcome turns an operation result into a label value.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var e *models.Error
	if !errors.As(err, &e) {
		return "error"
	}
	switch e.Kind {
	case models.KindValidation:
		return "invalid"
	case models.KindAuthentication:
		return "rejected"
	case models.KindNotFound:
		return "not_found"
	case models.KindConflict:
		return "conflict"
	default:
		return "error"
	}
}
