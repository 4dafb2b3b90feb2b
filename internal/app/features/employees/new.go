// internal/app/features/employees/new.go
package employees

import (
	"context"
	"net/http"

	"github.com/dalemusser/hrmslite/internal/app/apiclient"
	"github.com/dalemusser/hrmslite/internal/app/system/flash"
	"github.com/dalemusser/hrmslite/internal/app/system/inputval"
	"github.com/dalemusser/hrmslite/internal/app/system/timeouts"
	"github.com/dalemusser/hrmslite/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// HandleCreate validates the add form and creates the employee.
// Validation runs before any backend call.
//
// Route: POST /employees
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/employees")
		return
	}

	form := formFromRequest(r)
	data := listData{
		BaseVM:   viewdata.NewBaseVM(w, r, "Employees", "/"),
		ShowForm: true,
		Form:     form,
	}

	if data.SetFieldErrors(inputval.Struct(&form), msgInvalidForm) {
		h.renderList(w, r, &data)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.API.CreateEmployee(ctx, form.employee()); err != nil {
		h.Log.Warn("create employee failed",
			zap.String("employee_id", form.EmployeeID),
			zap.Error(err))
		data.SetError(apiclient.Message(err, failSave))
		h.renderList(w, r, &data)
		return
	}

	flash.Success(w, r, msgAdded)
	http.Redirect(w, r, "/employees", http.StatusSeeOther)
}
