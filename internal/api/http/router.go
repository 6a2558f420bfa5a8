package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/armahcreates/iwil/internal/api/http/handlers"
	apperrors "github.com/armahcreates/iwil/pkg/util"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Auth    *handlers.AuthHandler
	Session *handlers.SessionHandler
	Clients *handlers.ClientsHandler
	Reports *handlers.ReportsHandler
}

// RegisterRoutes wires HTTP routes. Each API path also gets a catch-all
// so unsupported methods answer 405 instead of 404 (OPTIONS never
// reaches here; the CORS middleware short-circuits it).
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post("/api/auth-login", cfg.Auth.Login)
	app.Post("/api/auth-register", cfg.Auth.Register)

	app.Get("/api/auth-session", cfg.Session.RequireSession, cfg.Session.Get)
	app.Post("/api/auth-session", cfg.Session.RequireSession, cfg.Session.Post)

	app.Get("/api/clients", cfg.Session.RequireSession, cfg.Clients.List)
	app.Get("/api/reports", cfg.Session.RequireSession, cfg.Reports.List)

	for _, path := range []string{
		"/api/auth-login",
		"/api/auth-register",
		"/api/auth-session",
		"/api/clients",
		"/api/reports",
	} {
		app.All(path, methodNotAllowed)
	}
}

func methodNotAllowed(_ *fiber.Ctx) error {
	return apperrors.NewMethodNotAllowed()
}
