// internal/app/features/employees/edit.go
package employees

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/hrmslite/internal/app/apiclient"
	"github.com/dalemusser/hrmslite/internal/app/system/flash"
	"github.com/dalemusser/hrmslite/internal/app/system/inputval"
	"github.com/dalemusser/hrmslite/internal/app/system/timeouts"
	"github.com/dalemusser/hrmslite/internal/app/system/viewdata"
	"github.com/dalemusser/hrmslite/internal/domain/models"
	"go.uber.org/zap"
)

// ServeEdit renders the list with the form pre-filled in edit mode.
// Only the department is editable.
//
// Route: GET /employees/{id}/edit
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)

	emps, current, ok := h.loadCurrent(w, r, id, failList)
	if !ok {
		return
	}

	data := listData{
		BaseVM:    viewdata.NewBaseVM(w, r, "Edit Employee", "/employees"),
		Employees: emps,
		Loaded:    true,
		ShowForm:  true,
		EditID:    id,
		Form:      formFromEmployee(current),
	}
	h.renderList(w, r, &data)
}

// HandleEdit saves a department change. The identifier, name and email are
// disabled on the page, so they are taken from the backend's current record.
//
// Route: POST /employees/{id}/edit
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/employees")
		return
	}

	emps, current, ok := h.loadCurrent(w, r, id, failSave)
	if !ok {
		return
	}

	form := formFromEmployee(current)
	form.Department = strings.TrimSpace(r.PostFormValue("department"))

	data := listData{
		BaseVM:    viewdata.NewBaseVM(w, r, "Edit Employee", "/employees"),
		Employees: emps,
		Loaded:    true,
		ShowForm:  true,
		EditID:    id,
		Form:      form,
	}

	if data.SetFieldErrors(inputval.Struct(&form), msgInvalidForm) {
		h.renderList(w, r, &data)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.API.UpdateEmployee(ctx, id, form.employee()); err != nil {
		h.Log.Warn("update employee failed",
			zap.String("employee_id", id),
			zap.Error(err))
		if apiclient.IsNotFound(err) {
			// Deleted since the form was opened; nothing left to edit.
			flash.Error(w, r, apiclient.Message(err, msgNotFound))
			redirectToList(w, r)
			return
		}
		data.SetError(apiclient.Message(err, failSave))
		h.renderList(w, r, &data)
		return
	}

	flash.Success(w, r, msgUpdated)
	http.Redirect(w, r, "/employees", http.StatusSeeOther)
}

// loadCurrent fetches the directory and the record for id. A direct GET for
// an unknown id renders the 404 page; any other failure
// queues an error banner and redirects to the list. Returns ok=false on failure.
func (h *Handler) loadCurrent(w http.ResponseWriter, r *http.Request, id, fallback string) ([]models.Employee, models.Employee, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	emps, err := h.API.ListEmployees(ctx)
	if err != nil {
		h.Log.Error("list employees failed", zap.Error(err))
		flash.Error(w, r, apiclient.Message(err, fallback))
		redirectToList(w, r)
		return nil, models.Employee{}, false
	}

	current, found := find(emps, id)
	if !found {
		if r.Method == http.MethodGet && !isHTMX(r) {
			h.ErrLog.LogNotFound(w, r, "employee not found", nil, msgNotFound, "/employees")
			return nil, models.Employee{}, false
		}
		flash.Error(w, r, msgNotFound)
		redirectToList(w, r)
		return nil, models.Employee{}, false
	}
	return emps, current, true
}
