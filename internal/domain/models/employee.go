// internal/domain/models/employee.go
package models

import "strings"

// UnassignedDepartment labels employees whose department is blank.
const UnassignedDepartment = "Unassigned"

// Employee is a record in the backend's employee directory.
// EmployeeID is assigned by the operator (e.g. "EMP001") and never changes.
type Employee struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// DepartmentOrUnassigned returns the department, or UnassignedDepartment when blank.
func (e Employee) DepartmentOrUnassigned() string {
	d := strings.TrimSpace(e.Department)
	if d == "" {
		return UnassignedDepartment
	}
	return d
}
