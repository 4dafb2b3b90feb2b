package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/dalemusser/hrmslite/internal/app/apiclient"
	"github.com/dalemusser/hrmslite/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Backend is an in-memory stand-in for the HRMS REST API. It follows the
// real service's rules: unique employee id and email, 404 for unknown
// employees, one attendance record per employee per day, cascade delete.
type Backend struct {
	Server *httptest.Server

	mu             sync.Mutex
	employees      []models.Employee
	attendance     []models.AttendanceRecord
	calls          map[string]int
	failList       int
	failAttendance map[string]int
	failWrites     map[string]int
}

// NewBackend starts a fake backend that is closed when t finishes.
func NewBackend(t *testing.T) *Backend {
	t.Helper()
	b := &Backend{
		calls:          make(map[string]int),
		failAttendance: make(map[string]int),
		failWrites:     make(map[string]int),
	}

	r := chi.NewRouter()
	r.Get("/", b.track("GET /", b.root))
	r.Get("/employees/", b.track("GET /employees/", b.listEmployees))
	r.Post("/employees/", b.track("POST /employees/", b.createEmployee))
	r.Put("/employees/{id}", b.track("PUT /employees/{id}", b.updateEmployee))
	r.Delete("/employees/{id}", b.track("DELETE /employees/{id}", b.deleteEmployee))
	r.Post("/attendance/", b.track("POST /attendance/", b.markAttendance))
	r.Get("/attendance/{id}", b.track("GET /attendance/{id}", b.listAttendance))

	b.Server = httptest.NewServer(r)
	t.Cleanup(b.Server.Close)
	return b
}

// Client returns an API client pointed at the fake backend.
func (b *Backend) Client(t *testing.T) *apiclient.Client {
	t.Helper()
	c, err := apiclient.New(b.Server.URL, b.Server.Client(), zap.NewNop())
	if err != nil {
		t.Fatalf("apiclient.New: %v", err)
	}
	return c
}

// SeedEmployees appends employees in insertion order.
func (b *Backend) SeedEmployees(emps ...models.Employee) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.employees = append(b.employees, emps...)
}

// SeedAttendance appends records without duplicate checks.
func (b *Backend) SeedAttendance(recs ...models.AttendanceRecord) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.attendance = append(b.attendance, recs...)
}

// FailEmployeeList makes GET /employees/ answer with status.
func (b *Backend) FailEmployeeList(status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failList = status
}

// FailAttendanceFor makes GET /attendance/{id} answer with status for id.
func (b *Backend) FailAttendanceFor(id string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failAttendance[id] = status
}

// FailWrite makes the route (e.g. "DELETE /employees/{id}") answer with
// status and a detail of "injected failure".
func (b *Backend) FailWrite(route string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failWrites[route] = status
}

// Calls returns how many times route (e.g. "GET /employees/") was hit.
func (b *Backend) Calls(route string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[route]
}

// Employees returns a snapshot of the stored employees.
func (b *Backend) Employees() []models.Employee {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Employee(nil), b.employees...)
}

// Attendance returns a snapshot of the stored records.
func (b *Backend) Attendance() []models.AttendanceRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.AttendanceRecord(nil), b.attendance...)
}

func (b *Backend) track(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls[route]++
		status := b.failWrites[route]
		b.mu.Unlock()
		if status != 0 {
			writeDetail(w, status, "injected failure")
			return
		}
		h(w, r)
	}
}

func (b *Backend) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "HRMS Lite Backend Running"})
}

func (b *Backend) listEmployees(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failList != 0 {
		writeDetail(w, b.failList, "employee list unavailable")
		return
	}
	out := append([]models.Employee{}, b.employees...)
	writeJSON(w, http.StatusOK, out)
}

func (b *Backend) createEmployee(w http.ResponseWriter, r *http.Request) {
	var emp models.Employee
	if err := json.NewDecoder(r.Body).Decode(&emp); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range b.employees {
		if e.EmployeeID == emp.EmployeeID || strings.EqualFold(e.Email, emp.Email) {
			writeDetail(w, http.StatusBadRequest, "Employee with this ID or email already exists")
			return
		}
	}
	b.employees = append(b.employees, emp)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Employee added successfully", "employee_id": emp.EmployeeID})
}

func (b *Backend) updateEmployee(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	var emp models.Employee
	if err := json.NewDecoder(r.Body).Decode(&emp); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, e := range b.employees {
		if e.EmployeeID == id {
			b.employees[i] = emp
			writeJSON(w, http.StatusOK, map[string]string{"message": "Employee updated successfully"})
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Employee not found")
}

func (b *Backend) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	b.mu.Lock()
	defer b.mu.Unlock()
	kept := b.attendance[:0]
	for _, rec := range b.attendance {
		if rec.EmployeeID != id {
			kept = append(kept, rec)
		}
	}
	b.attendance = kept
	for i, e := range b.employees {
		if e.EmployeeID == id {
			b.employees = append(b.employees[:i], b.employees[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Employee deleted successfully"})
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Employee not found")
}

func (b *Backend) markAttendance(w http.ResponseWriter, r *http.Request) {
	var body struct {
		EmployeeID string `json:"employee_id"`
		Date       string `json:"date"`
		Status     string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	day, err := models.ParseDate(body.Date)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid date")
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	found := false
	for _, e := range b.employees {
		if e.EmployeeID == body.EmployeeID {
			found = true
			break
		}
	}
	if !found {
		writeDetail(w, http.StatusNotFound, "Employee not found")
		return
	}
	for _, rec := range b.attendance {
		if rec.EmployeeID == body.EmployeeID && rec.Date == day {
			writeDetail(w, http.StatusBadRequest,
				fmt.Sprintf("Attendance already marked for %s on %s", body.EmployeeID, body.Date))
			return
		}
	}
	b.attendance = append(b.attendance, models.AttendanceRecord{
		EmployeeID: body.EmployeeID,
		Date:       day,
		Status:     models.AttendanceStatus(body.Status),
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Attendance marked successfully"})
}

func (b *Backend) listAttendance(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	b.mu.Lock()
	defer b.mu.Unlock()
	if status := b.failAttendance[id]; status != 0 {
		writeDetail(w, status, "attendance unavailable")
		return
	}
	// Dates go out the way the real service stores them: midnight datetimes.
	type wireRecord struct {
		EmployeeID string `json:"employee_id"`
		Date       string `json:"date"`
		Status     string `json:"status"`
	}
	out := []wireRecord{}
	for _, rec := range b.attendance {
		if rec.EmployeeID == id {
			out = append(out, wireRecord{
				EmployeeID: rec.EmployeeID,
				Date:       rec.Date.String() + "T00:00:00",
				Status:     string(rec.Status),
			})
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// pathID returns the unescaped {id} segment. chi routes on RawPath when the
// request carries encoded slashes.
func pathID(r *http.Request) string {
	raw := chi.URLParam(r, "id")
	if id, err := url.PathUnescape(raw); err == nil {
		return id
	}
	return raw
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
