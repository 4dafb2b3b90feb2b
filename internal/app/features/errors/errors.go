// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/hrmslite/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Heading string
	Message string
}

// Handler serves the standalone error pages.
// No backend needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders a friendly 404 page. Used as the router's NotFound handler.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	Render(w, r, http.StatusNotFound, "Page not found", "The page you requested does not exist.", "/")
}

// MethodNotAllowed renders a 405 page.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	Render(w, r, http.StatusMethodNotAllowed, "Not allowed", "That action is not available here.", "/")
}

// Render writes status and the friendly error page. If backURL is empty,
// "/" is used.
func Render(w http.ResponseWriter, r *http.Request, status int, heading, msg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(w, r, heading, backURL),
		Heading: heading,
		Message: msg,
	}
	data.BackURL = backURL

	w.WriteHeader(status)
	templates.Render(w, r, "error_page", data)
}
