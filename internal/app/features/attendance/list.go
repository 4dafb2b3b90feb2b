// internal/app/features/attendance/list.go
package attendance

import (
	"net/http"
	"strings"

	"github.com/dalemusser/hrmslite/internal/app/aggregate"
	"github.com/dalemusser/hrmslite/internal/app/apiclient"
	"github.com/dalemusser/hrmslite/internal/app/system/stats"
	"github.com/dalemusser/hrmslite/internal/app/system/timeouts"
	"github.com/dalemusser/hrmslite/internal/app/system/viewdata"
	"github.com/dalemusser/hrmslite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ServeAttendance renders the mark form and the records table.
//
//	?employee=ID  one employee's records
//	?q=text       identifier search (case-insensitive, exact)
//	neither       every employee's records
//
// Route: GET /attendance
func (h *Handler) ServeAttendance(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM: viewdata.NewBaseVM(w, r, "Attendance", "/"),
	}
	h.renderPage(w, r, &data, query.Get(r, "employee"), query.Get(r, "q"))
}

// renderPage loads the employees and the selected record set into data and
// renders. The first failure becomes the page banner.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, data *pageData, selected, q string) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "load attendance")
	defer cancel()

	today := models.Today(h.Now())
	data.Today = today.String()
	data.Statuses = models.AttendanceStatuses
	if data.Form.Status == "" {
		data.Form.Status = string(models.StatusPresent)
	}
	if data.Form.Date == "" {
		data.Form.Date = data.Today
	}

	setError := func(msg string) {
		if data.Error == "" {
			data.SetError(msg)
		}
	}

	emps, listErr := h.API.ListEmployees(ctx)
	if listErr != nil {
		h.Log.Error("list employees failed", zap.Error(listErr))
		setError(apiclient.Message(listErr, failEmployees))
		emps = []models.Employee{}
	}
	data.Employees = emps

	data.Query = strings.TrimSpace(q)
	if data.Query != "" {
		if emp, ok := stats.FindEmployee(emps, data.Query); ok {
			selected = emp.EmployeeID
		} else {
			setError(msgIDNotFound)
			selected = ""
		}
	}

	var records []models.AttendanceRecord
	switch {
	case selected != "":
		data.Selected = selected
		data.SelectedName = selected
		for _, e := range emps {
			if e.EmployeeID == selected {
				data.SelectedName = e.Name
				break
			}
		}
		if data.Form.EmployeeID == "" {
			data.Form.EmployeeID = selected
		}

		recs, err := h.API.ListAttendance(ctx, selected)
		if err != nil {
			h.Log.Error("list attendance failed", zap.String("employee_id", selected), zap.Error(err))
			setError(apiclient.Message(err, failFetch))
		}
		records = recs

	case listErr == nil:
		recs, skipped, err := aggregate.LoadAttendanceFor(ctx, h.API, emps, h.Opts)
		if err != nil {
			h.Log.Error("load all attendance failed", zap.Error(err))
			setError(apiclient.Message(err, failFetch))
		}
		records = recs
		data.Skipped = len(skipped)
	}

	stats.SortNewestFirst(records)
	data.Rows = buildRows(records, stats.NameIndex(emps))
	data.Summary = stats.Summarize(records)

	templates.Render(w, r, "attendance_page", *data)
}
