// internal/app/features/employees/types.go
package employees

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/dalemusser/hrmslite/internal/app/system/formutil"
	"github.com/dalemusser/hrmslite/internal/app/system/viewdata"
	"github.com/dalemusser/hrmslite/internal/domain/models"
)

// Banner and fallback text shown on the employee pages.
const (
	msgAdded       = "Employee added successfully!"
	msgUpdated     = "Employee updated successfully!"
	msgDeleted     = "Employee deleted successfully!"
	msgInvalidForm = "Please fill in all required fields correctly"
	msgNotFound    = "Employee not found"

	failList   = "Failed to fetch employees"
	failSave   = "Failed to save employee"
	failDelete = "Failed to delete employee"
)

// employeeForm is the add/edit form. Field order matches the page.
type employeeForm struct {
	EmployeeID string `form:"employee_id" label:"Employee ID" validate:"required"`
	Name       string `form:"name" label:"Full Name" validate:"required,min=2"`
	Email      string `form:"email" label:"Email" validate:"required,simpleemail"`
	Department string `form:"department" label:"Department" validate:"required"`
}

func formFromRequest(r *http.Request) employeeForm {
	return employeeForm{
		EmployeeID: strings.TrimSpace(r.PostFormValue("employee_id")),
		Name:       strings.TrimSpace(r.PostFormValue("name")),
		Email:      strings.TrimSpace(r.PostFormValue("email")),
		Department: strings.TrimSpace(r.PostFormValue("department")),
	}
}

func formFromEmployee(e models.Employee) employeeForm {
	return employeeForm{
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Email:      e.Email,
		Department: e.Department,
	}
}

func (f employeeForm) employee() models.Employee {
	return models.Employee{
		EmployeeID: f.EmployeeID,
		Name:       f.Name,
		Email:      f.Email,
		Department: f.Department,
	}
}

// listData drives employees_list. The form is open when ShowForm is set;
// EditID non-empty means edit mode.
type listData struct {
	viewdata.BaseVM
	formutil.Base

	Employees []models.Employee
	Loaded    bool

	ShowForm bool
	EditID   string
	Form     employeeForm

	Delete *deleteModalData
}

// employeeRow is one table row with its action links.
type employeeRow struct {
	models.Employee
	EditURL   string
	DeleteURL string
}

// Rows returns the table rows in backend order.
func (d listData) Rows() []employeeRow {
	rows := make([]employeeRow, len(d.Employees))
	for i, e := range d.Employees {
		rows[i] = employeeRow{Employee: e, EditURL: editPath(e.EmployeeID), DeleteURL: deletePath(e.EmployeeID)}
	}
	return rows
}

// Editing reports whether the form is in edit mode.
func (d listData) Editing() bool { return d.EditID != "" }

// FormAction is where the form posts.
func (d listData) FormAction() string {
	if d.EditID != "" {
		return editPath(d.EditID)
	}
	return "/employees"
}

// deleteModalData drives employee_delete_modal.
type deleteModalData struct {
	EmployeeID string
	Name       string
	Action     string
	BackURL    string
	CSRFField  template.HTML
}
