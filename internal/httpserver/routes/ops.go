package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/curator/internal/httpserver/deps"
	"github.com/MrSnakeDoc/curator/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/curator/internal/httpserver/mw"
)

func init() { Register(registerOps) }

func registerOps(r chi.Router, d deps.Deps) {
	r.Get("/healthz", handlers.Healthz(d))
	r.With(mw.AllowOnlyCIDRS(d.AdminCIDRs, d.TrustProxy, d.Logger)).Get("/readyz", handlers.Readyz(d))
	if d.Metrics != nil {
		r.With(mw.AllowOnlyCIDRS(d.AdminCIDRs, d.TrustProxy, d.Logger)).Handle("/metrics", d.Metrics.Handler())
	}
}
