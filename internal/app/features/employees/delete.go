// internal/app/features/employees/delete.go
package employees

import (
	"context"
	"net/http"

	"github.com/dalemusser/hrmslite/internal/app/apiclient"
	"github.com/dalemusser/hrmslite/internal/app/system/flash"
	"github.com/dalemusser/hrmslite/internal/app/system/navigation"
	"github.com/dalemusser/hrmslite/internal/app/system/timeouts"
	"github.com/dalemusser/hrmslite/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// ServeDeleteModal renders the delete confirmation. HTMX requests get only
// the modal snippet; others get the list page with the modal open. Cancel
// is a plain link back to the list.
//
// Route: GET /employees/{id}/delete
func (h *Handler) ServeDeleteModal(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)

	emps, emp, ok := h.loadCurrent(w, r, id, failList)
	if !ok {
		return
	}

	modal := &deleteModalData{
		EmployeeID: emp.EmployeeID,
		Name:       emp.Name,
		Action:     deletePath(emp.EmployeeID),
		BackURL:    navigation.SafeBackURL(r, navigation.EmployeesBackURL),
		CSRFField:  csrf.TemplateField(r),
	}

	if isHTMX(r) {
		// Snippet is defined as {{ define "employee_delete_modal" }} ...
		templates.RenderSnippet(w, "employee_delete_modal", modal)
		return
	}

	data := listData{
		BaseVM:    viewdata.NewBaseVM(w, r, "Delete Employee", "/employees"),
		Employees: emps,
		Loaded:    true,
		Delete:    modal,
	}
	h.renderList(w, r, &data)
}

// HandleDelete issues exactly one DELETE and redirects back to the list,
// which re-fetches.
//
// Route: POST /employees/{id}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.API.DeleteEmployee(ctx, id); err != nil {
		h.Log.Warn("delete employee failed",
			zap.String("employee_id", id),
			zap.Error(err))
		flash.Error(w, r, apiclient.Message(err, failDelete))
	} else {
		h.Log.Info("employee deleted", zap.String("employee_id", id))
		flash.Success(w, r, msgDeleted)
	}

	http.Redirect(w, r, navigation.SafeBackURL(r, navigation.EmployeesBackURL), http.StatusSeeOther)
}
