package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/curator/internal/httpserver/deps"
	"github.com/MrSnakeDoc/curator/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/curator/internal/httpserver/mw"
)

func init() { Register(registerContributions) }

func registerContributions(r chi.Router, d deps.Deps) {
	limit := mw.RateLimit(mw.RateLimitConfig{
		Name:              "contributions",
		Burst:             d.ContribBurst,
		RefillPerIPPerMin: d.ContribRefillPerMin,
		MaxEntries:        10000,
		TrustProxy:        d.TrustProxy,
		Now:               d.TimeNow,
	}, d.Logger)

	r.Route("/contributions", func(r chi.Router) {
		r.Get("/", handlers.ListContributions(d))
		r.With(limit).Post("/", handlers.AddContribution(d))
		r.Delete("/{index}", handlers.RemoveContribution(d))
		r.Get("/export", handlers.ExportContributions(d))
	})
}
