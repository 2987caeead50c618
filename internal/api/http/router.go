package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/neogig/neogig/internal/api/http/handlers"
	"github.com/neogig/neogig/internal/auth"
	"github.com/neogig/neogig/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Profiles       *handlers.ProfilesHandler
	Jobs           *handlers.JobsHandler
	Applications   *handlers.ApplicationsHandler
	SavedJobs      *handlers.SavedJobsHandler
	Questions      *handlers.QuestionsHandler
	ContextDeriver *auth.ContextDeriver
}

// RegisterRoutes wires HTTP routes. The context deriver runs on every
// route; gates are attached per route group.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Use(cfg.ContextDeriver.Handle)

	authGroup := app.Group("/auth")
	authGroup.Post("/seekers/signup", cfg.Auth.SignupSeeker)
	authGroup.Post("/companies/signup", cfg.Auth.SignupCompany)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", auth.RequireAuthenticated(), cfg.Auth.Me)

	// Public browse surface; identity, when present, only decorates
	// responses (saved flags).
	app.Get("/jobs", cfg.Jobs.Browse)
	app.Get("/jobs/:id", cfg.Jobs.Get)
	app.Get("/jobs/:id/questions", cfg.Questions.ListForJob)

	seekerOnly := auth.RequireRole(domain.RoleSeeker)
	app.Get("/profiles/seeker", seekerOnly, cfg.Profiles.GetSeeker)
	app.Put("/profiles/seeker", seekerOnly, cfg.Profiles.UpdateSeeker)
	app.Post("/jobs/:id/applications", seekerOnly, cfg.Applications.Apply)
	app.Get("/applications", seekerOnly, cfg.Applications.ListMine)
	app.Post("/jobs/:id/save", seekerOnly, cfg.SavedJobs.Save)
	app.Delete("/jobs/:id/save", seekerOnly, cfg.SavedJobs.Unsave)
	app.Get("/saved-jobs", seekerOnly, cfg.SavedJobs.List)
	app.Post("/jobs/:id/questions", seekerOnly, cfg.Questions.Ask)

	companyOnly := auth.RequireRole(domain.RoleCompany)
	app.Get("/profiles/company", companyOnly, cfg.Profiles.GetCompany)
	app.Put("/profiles/company", companyOnly, cfg.Profiles.UpdateCompany)
	app.Post("/jobs", companyOnly, cfg.Jobs.Create)
	app.Patch("/jobs/:id", companyOnly, cfg.Jobs.Update)
	app.Post("/jobs/:id/close", companyOnly, cfg.Jobs.Close)
	app.Get("/company/jobs", companyOnly, cfg.Jobs.ListMine)
	app.Get("/jobs/:id/applications", companyOnly, cfg.Applications.ListForJob)
	app.Post("/applications/:id/decision", companyOnly, cfg.Applications.Decide)
	app.Post("/questions/:id/answer", companyOnly, cfg.Questions.Answer)
}
