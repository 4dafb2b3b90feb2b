// internal/app/features/employees/paths.go
package employees

import (
	"net/http"
	"net/url"

	"github.com/dalemusser/hrmslite/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

func editPath(id string) string {
	return "/employees/" + url.PathEscape(id) + "/edit"
}

func deletePath(id string) string {
	return "/employees/" + url.PathEscape(id) + "/delete"
}

// idParam returns the {id} route segment unescaped. chi matches on the raw
// path when an id contains an encoded slash.
func idParam(r *http.Request) string {
	raw := chi.URLParam(r, "id")
	if id, err := url.PathUnescape(raw); err == nil {
		return id
	}
	return raw
}

func find(list []models.Employee, id string) (models.Employee, bool) {
	for _, e := range list {
		if e.EmployeeID == id {
			return e, true
		}
	}
	return models.Employee{}, false
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// redirectToList sends the browser back to the list. HTMX requests get an
// HX-Redirect so the modal target is not swapped with a whole page.
func redirectToList(w http.ResponseWriter, r *http.Request) {
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/employees")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/employees", http.StatusSeeOther)
}
