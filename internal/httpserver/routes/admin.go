package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/curator/internal/httpserver/deps"
	"github.com/MrSnakeDoc/curator/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/curator/internal/httpserver/mw"
)

func init() { Register(registerAdmin) }

func registerAdmin(r chi.Router, d deps.Deps) {
	loginLimit := mw.RateLimit(mw.RateLimitConfig{
		Name:              "admin-login",
		Burst:             5,
		RefillPerIPPerMin: 5,
		MaxEntries:        10000,
		TrustProxy:        d.TrustProxy,
		Now:               d.TimeNow,
	}, d.Logger)

	r.Route("/admin", func(r chi.Router) {
		r.Use(mw.AllowOnlyCIDRS(d.AdminCIDRs, d.TrustProxy, d.Logger))
		r.With(loginLimit).Post("/login", handlers.Login(d))

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireAdmin(d.Tokens, d.Logger))

			r.Get("/status", handlers.Status(d))
			r.Post("/reset", handlers.Reset(d))
			r.Post("/import", handlers.Import(d))
			r.Get("/export", handlers.Export(d))
			r.Get("/template", handlers.Template(d))

			r.Route("/resources", func(r chi.Router) {
				r.Post("/", handlers.AddResource(d))
				r.Post("/move", handlers.MoveResource(d))
				r.Patch("/{id}", handlers.UpdateResource(d))
				r.Delete("/{id}", handlers.DeleteResource(d))
			})

			r.Route("/collections", func(r chi.Router) {
				r.Post("/", handlers.AddCollection(d))
				r.Post("/move", handlers.MoveCollection(d))
				r.Patch("/{id}", handlers.UpdateCollection(d))
				r.Delete("/{id}", handlers.DeleteCollection(d))

				r.Route("/{id}/subcategories", func(r chi.Router) {
					r.Post("/", handlers.AddSubCategory(d))
					r.Post("/move", handlers.MoveSubCategory(d))
					r.Put("/{index}", handlers.RenameSubCategory(d))
					r.Delete("/{index}", handlers.RemoveSubCategory(d))
				})
			})

			r.Route("/taglines", func(r chi.Router) {
				r.Post("/", handlers.AddTagline(d))
				r.Delete("/{index}", handlers.RemoveTagline(d))
			})
		})
	})
}
