// internal/app/features/employees/list.go
package employees

import (
	"context"
	"net/http"

	"github.com/dalemusser/hrmslite/internal/app/apiclient"
	"github.com/dalemusser/hrmslite/internal/app/system/timeouts"
	"github.com/dalemusser/hrmslite/internal/app/system/viewdata"
	"github.com/dalemusser/hrmslite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ServeList renders the employee table. ?new=1 opens the add form.
//
// Route: GET /employees
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	data := listData{
		BaseVM:   viewdata.NewBaseVM(w, r, "Employees", "/"),
		ShowForm: query.Get(r, "new") == "1",
	}
	h.renderList(w, r, &data)
}

// renderList fetches the directory into data and renders the page. A fetch
// failure becomes a banner over an empty table; an earlier banner wins.
func (h *Handler) renderList(w http.ResponseWriter, r *http.Request, data *listData) {
	if !data.Loaded {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
		defer cancel()

		emps, err := h.API.ListEmployees(ctx)
		if err != nil {
			h.Log.Error("list employees failed", zap.Error(err))
			if data.Error == "" {
				data.SetError(apiclient.Message(err, failList))
			}
			emps = []models.Employee{}
		} else {
			data.Loaded = true
		}
		data.Employees = emps
	}

	templates.Render(w, r, "employees_list", *data)
}
