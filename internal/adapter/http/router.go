package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/finlogix/finlogix/internal/adapter/http/handler"
	"github.com/finlogix/finlogix/internal/adapter/http/middleware"
	"github.com/finlogix/finlogix/internal/infrastructure/auth"
	"github.com/finlogix/finlogix/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AuthHandler        *handler.AuthHandler
	TransactionHandler *handler.TransactionHandler
	DashboardHandler   *handler.DashboardHandler
	AdvisorHandler     *handler.AdvisorHandler
	AdminHandler       *handler.AdminHandler
	HealthHandler      *handler.HealthHandler

	JWTManager       *auth.JWTManager
	IdempotencyStore usecase.IdempotencyStore
	Logging          *middleware.LoggingMiddleware
	RateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(cfg.Logging.Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth endpoints
		r.Post("/auth/register", cfg.AuthHandler.Register)
		r.Post("/auth/login", cfg.AuthHandler.Login)

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(cfg.JWTManager))

			if cfg.IdempotencyStore != nil {
				idempotency := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
				r.Use(idempotency.Wrap)
			}

			// Profile
			r.Get("/me", cfg.AuthHandler.Me)
			r.Put("/me", cfg.AuthHandler.UpdateProfile)
			r.Post("/me/password", cfg.AuthHandler.ChangePassword)

			// Ledger
			r.Route("/transactions", func(r chi.Router) {
				r.Post("/", cfg.TransactionHandler.Create)
				r.Get("/", cfg.TransactionHandler.List)
				r.Get("/categories", cfg.TransactionHandler.Categories)
				r.Get("/{id}", cfg.TransactionHandler.Get)
				r.Put("/{id}", cfg.TransactionHandler.Update)
				r.Delete("/{id}", cfg.TransactionHandler.Delete)
			})

			// Analytics
			r.Get("/dashboard", cfg.DashboardHandler.Dashboard)
			r.Route("/analytics", func(r chi.Router) {
				r.Get("/summary", cfg.DashboardHandler.Summary)
				r.Get("/breakdown", cfg.DashboardHandler.Breakdown)
				r.Get("/trends", cfg.DashboardHandler.MonthlyTrends)
			})

			// Advisor
			r.Route("/advisor", func(r chi.Router) {
				r.Get("/insights", cfg.AdvisorHandler.Insights)
				r.Get("/forecast", cfg.AdvisorHandler.Forecast)
				r.Get("/budget", cfg.AdvisorHandler.BudgetPlan)
				r.Get("/advice", cfg.AdvisorHandler.Advice)
			})

			// Administration
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Get("/stats", cfg.AdminHandler.Stats)
				r.Get("/users", cfg.AdminHandler.ListUsers)
				r.Get("/users/{id}", cfg.AdminHandler.GetUser)
				r.Patch("/users/{id}", cfg.AdminHandler.UpdateUser)
				r.Delete("/users/{id}", cfg.AdminHandler.DeleteUser)
				r.Get("/transactions", cfg.AdminHandler.ListTransactions)
			})
		})
	})

	return r
}
