// internal/app/features/attendance/routes.go
package attendance

import "github.com/go-chi/chi/v5"

// Routes mounts the attendance page under the base path
// (typically "/attendance" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeAttendance)
	r.Post("/", h.HandleMark)
	return r
}
