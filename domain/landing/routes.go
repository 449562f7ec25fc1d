package landing

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the landing page handlers.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.Index)
	r.Post("/nav/{target}", h.Navigate)
	r.Post("/modals/info/close", h.CloseInfo)
	r.Post("/modals/contact/close", h.CloseContact)
	r.Post("/contact", h.Submit)
	r.Post("/contact/fields/{field}", h.SetField)
	r.Get("/api/state", h.State)
}
