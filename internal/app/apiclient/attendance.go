// internal/app/apiclient/attendance.go
package apiclient

import (
	"context"
	"net/http"

	"github.com/dalemusser/hrmslite/internal/domain/models"
)

// MarkAttendance records rec. The backend refuses a second record for the
// same employee and day.
func (c *Client) MarkAttendance(ctx context.Context, rec models.AttendanceRecord) error {
	return c.do(ctx, "mark attendance", http.MethodPost, c.endpoint("attendance", ""), rec, nil)
}

// ListAttendance returns employeeID's records in backend order (unsorted).
func (c *Client) ListAttendance(ctx context.Context, employeeID string) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	if err := c.do(ctx, "list attendance", http.MethodGet, c.endpoint("attendance", employeeID), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.AttendanceRecord{}
	}
	return out, nil
}
