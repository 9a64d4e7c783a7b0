package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/caregarden/billing/internal/customers"
	"github.com/caregarden/billing/internal/dashboard"
	"github.com/caregarden/billing/internal/invoices"
	"github.com/caregarden/billing/internal/settings"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	CustomerHandler  *customers.Handler
	InvoiceHandler   *invoices.Handler
	SettingsHandler  *settings.Handler
	DashboardHandler *dashboard.Handler
}

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/customers", func(r chi.Router) {
		params.CustomerHandler.MountRoutes(r)
		r.Get("/{id}/invoices", params.InvoiceHandler.CustomerHistory)
	})
	r.Route("/invoices", params.InvoiceHandler.MountRoutes)
	r.Route("/settings", params.SettingsHandler.MountRoutes)
	r.Route("/dashboard", params.DashboardHandler.MountRoutes)

	return r
}
