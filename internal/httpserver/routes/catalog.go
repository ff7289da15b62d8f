package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/curator/internal/httpserver/deps"
	"github.com/MrSnakeDoc/curator/internal/httpserver/handlers"
)

func init() { Register(registerCatalog) }

func registerCatalog(r chi.Router, d deps.Deps) {
	r.Get("/catalog", handlers.Catalog(d))
	r.Get("/resources", handlers.Resources(d))
	r.Get("/bookmarks", handlers.Bookmarks(d))
	r.Post("/bookmarks/{id}", handlers.ToggleBookmark(d))
	r.Get("/view", handlers.ViewMode(d))
	r.Put("/view", handlers.SetViewMode(d))
}
