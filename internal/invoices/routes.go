package invoices

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/generate", h.Generate)
	r.Get("/generate/defaults", h.GenerateDefaults)
	r.Get("/{id}", h.Show)
	r.Post("/{id}/status", h.UpdateStatus)
	r.Delete("/{id}", h.Delete)
	r.Get("/{id}/print", h.Print)
	r.Get("/{id}/pdf", h.PDF)
}
