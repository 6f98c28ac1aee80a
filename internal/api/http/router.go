package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/course-service/internal/api/http/handlers"
	"github.com/spec-kit/course-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Courses        *handlers.CoursesHandler
	Dashboard      *handlers.DashboardHandler
	Payments       *handlers.PaymentsHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
	AuthRateLimit  fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	if cfg.AuthRateLimit != nil {
		authGroup.Use(cfg.AuthRateLimit)
	}
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)

	users := app.Group("/users", cfg.AuthMiddleware.Handle)
	users.Get("/me", cfg.Users.Me)
	users.Put("/me", cfg.Users.UpdateMe)

	courses := app.Group("/courses")
	courses.Get("", cfg.Courses.List)
	courses.Get("/:id", cfg.Courses.Get)
	courses.Post("", cfg.AuthMiddleware.Handle, cfg.Courses.Create)
	courses.Put("/:id", cfg.AuthMiddleware.Handle, cfg.Courses.Update)
	courses.Delete("/:id", cfg.AuthMiddleware.Handle, cfg.Courses.Delete)
	courses.Post("/:id/enroll", cfg.AuthMiddleware.Handle, cfg.Courses.Enroll)
	courses.Post("/:id/modules/:moduleID/complete", cfg.AuthMiddleware.Handle, cfg.Courses.CompleteModule)

	dashboard := app.Group("/dashboard", cfg.AuthMiddleware.Handle)
	dashboard.Get("/progress", cfg.Dashboard.Progress)
	dashboard.Get("/recommendations", cfg.Dashboard.Recommendations)

	payments := app.Group("/payments", cfg.AuthMiddleware.Handle)
	payments.Post("", cfg.Payments.Create)
	payments.Post("/:id/confirm", cfg.Payments.Confirm)
	payments.Get("", cfg.Payments.List)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle)
	admin.Get("/analytics", cfg.Admin.Analytics)
	admin.Get("/users", cfg.Admin.Users)
}
