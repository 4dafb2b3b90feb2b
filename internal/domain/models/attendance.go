// internal/domain/models/attendance.go
package models

import "strings"

// AttendanceStatus is the binary outcome recorded for one employee on one day.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// AttendanceStatuses lists the accepted statuses in display order.
var AttendanceStatuses = []AttendanceStatus{StatusPresent, StatusAbsent}

// Valid reports whether s is one of the known statuses (exact match).
func (s AttendanceStatus) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// ParseAttendanceStatus maps user input onto a status, ignoring case and
// surrounding whitespace. ok is false for anything else.
func ParseAttendanceStatus(s string) (AttendanceStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "present":
		return StatusPresent, true
	case "absent":
		return StatusAbsent, true
	}
	return "", false
}

// AttendanceRecord is one (employee, day, status) tuple owned by the backend.
type AttendanceRecord struct {
	EmployeeID string           `json:"employee_id"`
	Date       Date             `json:"date"`
	Status     AttendanceStatus `json:"status"`
}
