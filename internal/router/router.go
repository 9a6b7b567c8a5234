package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"suraksha-api/internal/config"
	"suraksha-api/internal/handler"
	"suraksha-api/internal/metrics"
	"suraksha-api/internal/middleware"
	"suraksha-api/internal/model"
)

type Handlers struct {
	Auth   *handler.AuthHandler
	User   *handler.UserHandler
	Health *handler.HealthHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, handlers Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)
	metrics.Init()

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)
	r.Use(metrics.Instrument)

	r.Get("/health", handlers.Health.Check)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/auth", func(auth chi.Router) {
		auth.Use(middleware.Timeout(cfg.RequestTimeout))

		auth.Post("/register", handlers.Auth.Register)
		auth.Post("/login", handlers.Auth.Login)
		auth.Post("/refresh", handlers.Auth.Refresh)
		auth.With(authMiddleware.RequireAuth).Post("/logout", handlers.Auth.Logout)
		auth.With(authMiddleware.RequireAuth).Get("/me", handlers.Auth.Me)
	})

	r.Route("/admin", func(admin chi.Router) {
		admin.Use(middleware.Timeout(cfg.RequestTimeout))
		admin.Use(authMiddleware.RequireAuth)
		admin.Use(authMiddleware.RequireRoles(model.RoleAdmin))

		admin.Get("/users", handlers.User.List)
		admin.Post("/activate", handlers.User.Activate)
		admin.Post("/assign-ngo", handlers.User.AssignNGO)
	})

	return r
}
