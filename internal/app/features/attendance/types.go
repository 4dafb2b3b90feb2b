// internal/app/features/attendance/types.go
package attendance

import (
	"net/http"
	"strings"

	"github.com/dalemusser/hrmslite/internal/app/system/formutil"
	"github.com/dalemusser/hrmslite/internal/app/system/stats"
	"github.com/dalemusser/hrmslite/internal/app/system/viewdata"
	"github.com/dalemusser/hrmslite/internal/domain/models"
)

const (
	msgMarked      = "Attendance marked successfully!"
	msgInvalidForm = "Please fill in all required fields correctly"
	msgIDNotFound  = "Employee ID not found"
	msgFutureDate  = "Date cannot be in the future"

	failEmployees = "Failed to fetch employees"
	failFetch     = "Failed to fetch attendance"
	failMark      = "Failed to mark attendance"
)

// markForm is the mark-attendance form.
type markForm struct {
	EmployeeID string `form:"employee_id" label:"Employee" validate:"required"`
	Date       string `form:"date" label:"Date" validate:"required,isodate"`
	Status     string `form:"status" label:"Status" validate:"required,attstatus"`
}

func formFromRequest(r *http.Request) markForm {
	f := markForm{
		EmployeeID: strings.TrimSpace(r.PostFormValue("employee_id")),
		Date:       strings.TrimSpace(r.PostFormValue("date")),
		Status:     strings.TrimSpace(r.PostFormValue("status")),
	}
	if s, ok := models.ParseAttendanceStatus(f.Status); ok {
		f.Status = string(s)
	}
	return f
}

// recordRow is one row of the records table.
type recordRow struct {
	EmployeeID string
	Name       string
	Date       string
	Weekday    string
	Status     models.AttendanceStatus
}

// Present reports whether the row is a Present record, for styling.
func (r recordRow) Present() bool { return r.Status == models.StatusPresent }

// pageData drives attendance_page.
type pageData struct {
	viewdata.BaseVM
	formutil.Base

	Employees []models.Employee
	Statuses  []models.AttendanceStatus
	Today     string

	// Filter state. Selected is the employee whose records are shown;
	// empty means all employees.
	Selected     string
	SelectedName string
	Query        string

	Form    markForm
	Rows    []recordRow
	Summary stats.Summary
	Skipped int
}

// ShowingAll reports whether the table holds every employee's records.
func (d pageData) ShowingAll() bool { return d.Selected == "" }

func buildRows(records []models.AttendanceRecord, names map[string]string) []recordRow {
	rows := make([]recordRow, len(records))
	for i, rec := range records {
		name := names[rec.EmployeeID]
		if name == "" {
			name = rec.EmployeeID
		}
		rows[i] = recordRow{
			EmployeeID: rec.EmployeeID,
			Name:       name,
			Date:       rec.Date.Display(),
			Weekday:    rec.Date.Weekday(),
			Status:     rec.Status,
		}
	}
	return rows
}
