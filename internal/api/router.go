package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/book-manager/internal/api/handlers"
	"github.com/baharkarakas/book-manager/internal/api/httpx"
	"github.com/baharkarakas/book-manager/internal/config"
	"github.com/baharkarakas/book-manager/internal/metrics"
	"github.com/baharkarakas/book-manager/internal/middleware"
	"github.com/baharkarakas/book-manager/internal/models"
	"github.com/baharkarakas/book-manager/internal/web"
)

const webPrefix = "/app"

type RouterDeps struct {
	Cfg      config.Config
	Logger   *slog.Logger
	AuthSvc  handlers.Authenticator
	BookSvc  handlers.BookService
	Verifier middleware.TokenVerifier
	Started  time.Time
}

func NewRouter(d RouterDeps) http.Handler {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Started.IsZero() {
		d.Started = time.Now()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Logging(d.Logger), middleware.Recover, middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.Cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	// health & metrics
	r.Get("/health", handlers.NewHealthHandler(d.Started).Health)
	r.Handle("/metrics", metrics.Handler())

	authH := handlers.NewAuthHandler(d.AuthSvc)
	bookH := handlers.NewBookHandler(d.BookSvc)
	gate := middleware.NewAuthMiddleware(d.Verifier)

	registerAPI := func(r chi.Router) {
		r.Post("/login", authH.Login)

		r.Route("/books", func(r chi.Router) {
			r.Use(gate.Auth)
			r.Get("/", bookH.List)
			r.Post("/", bookH.Create)
			r.Get("/{id}", bookH.Get)
			r.Put("/{id}", bookH.Update)
			r.Delete("/{id}", bookH.Delete)
		})
	}
	if base := d.Cfg.APIBasePath; base != "" {
		r.Route(base, registerAPI)
	} else {
		registerAPI(r)
	}

	if d.Cfg.WebEnabled {
		r.Mount(webPrefix, web.Handler(webPrefix, d.Cfg.APIBasePath))
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, webPrefix+"/", http.StatusFound)
		})
	}

	return r
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	httpx.WriteFailure(w, models.NewNotFoundError(fmt.Sprintf("Route %s %s not found", r.Method, r.URL.Path), nil))
}
