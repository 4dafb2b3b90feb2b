// internal/app/apiclient/employees.go
package apiclient

import (
	"context"
	"net/http"

	"github.com/dalemusser/hrmslite/internal/domain/models"
)

// ListEmployees returns every employee in backend order (insertion order).
func (c *Client) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var out []models.Employee
	if err := c.do(ctx, "list employees", http.MethodGet, c.endpoint("employees", ""), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Employee{}
	}
	return out, nil
}

// CreateEmployee adds emp to the directory.
func (c *Client) CreateEmployee(ctx context.Context, emp models.Employee) error {
	return c.do(ctx, "create employee", http.MethodPost, c.endpoint("employees", ""), emp, nil)
}

// UpdateEmployee replaces the mutable fields of employee id.
func (c *Client) UpdateEmployee(ctx context.Context, id string, emp models.Employee) error {
	return c.do(ctx, "update employee", http.MethodPut, c.endpoint("employees", id), emp, nil)
}

// DeleteEmployee removes employee id. The backend cascades to attendance.
func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.do(ctx, "delete employee", http.MethodDelete, c.endpoint("employees", id), nil, nil)
}

// Ping checks that the backend answers on its root path.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, "ping", http.MethodGet, c.endpoint(""), nil, nil)
}
