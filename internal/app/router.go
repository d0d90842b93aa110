package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/skillsenhance/skillsenhance/internal/approvals"
	"github.com/skillsenhance/skillsenhance/internal/auth"
	"github.com/skillsenhance/skillsenhance/internal/content"
	"github.com/skillsenhance/skillsenhance/internal/navbar"
	"github.com/skillsenhance/skillsenhance/internal/observability"
	"github.com/skillsenhance/skillsenhance/internal/roles"
	"github.com/skillsenhance/skillsenhance/internal/shared"
	"github.com/skillsenhance/skillsenhance/internal/support"
	"github.com/skillsenhance/skillsenhance/internal/users"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	SessionManager *shared.SessionManager

	AuthHandler      *auth.Handler
	RolesHandler     *roles.Handler
	UsersHandler     *users.Handler
	NavbarHandler    *navbar.Handler
	ContentHandler   *content.Handler
	ApprovalsHandler *approvals.Handler
	SupportHandler   *support.Handler

	Metrics *observability.Metrics
}

// NewRouter constructs the chi.Router with Skills Enhance defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
		Metrics:        params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", params.AuthHandler.MountRoutes)
		r.Route("/roles", params.RolesHandler.MountRoutes)
		r.Route("/users", params.UsersHandler.MountRoutes)
		r.Route("/navbar-config", params.NavbarHandler.MountRoutes)
		r.Route("/writer", params.ContentHandler.MountRoutes)
		r.Route("/approvals", params.ApprovalsHandler.MountRoutes)
		r.Route("/support/tickets", params.SupportHandler.MountRoutes)
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
