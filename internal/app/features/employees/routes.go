// internal/app/features/employees/routes.go
package employees

import "github.com/go-chi/chi/v5"

// Routes mounts all Employee routes under the base path
// (typically "/employees" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// LIST (?new=1 opens the add form)
	r.Get("/", h.ServeList)

	// CREATE
	r.Post("/", h.HandleCreate)

	// EDIT (department only)
	r.Get("/{id}/edit", h.ServeEdit)
	r.Post("/{id}/edit", h.HandleEdit)

	// DELETE (confirmation modal, then POST)
	r.Get("/{id}/delete", h.ServeDeleteModal)
	r.Post("/{id}/delete", h.HandleDelete)

	return r
}
