// internal/app/system/stats/stats.go
//
// Package stats holds the pure reducers behind the dashboard and the
// attendance view. Nothing here does I/O.
package stats

import (
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/dalemusser/hrmslite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
)

// DefaultRecentLimit is how many recent employees the dashboard lists.
const DefaultRecentLimit = 5

// DepartmentCount is one row of the department distribution.
type DepartmentCount struct {
	Name    string
	Count   int
	Percent int // Count / total * 100, rounded
}

// Dashboard is recomputed on every dashboard load.
type Dashboard struct {
	TotalEmployees  int
	PresentToday    int
	AbsentToday     int
	AttendanceRate  int
	RecentEmployees []models.Employee
	Departments     []DepartmentCount
	Skipped         []string
}

// EmployeeAttendance pairs an employee with whatever records were fetched
// for them. Failed fetches arrive with a nil Records.
type EmployeeAttendance struct {
	Employee models.Employee
	Records  []models.AttendanceRecord
}

// BuildDashboard reduces the employee list and per-employee records into a
// Dashboard. skipped is carried through unchanged.
func BuildDashboard(employees []models.Employee, attendance []EmployeeAttendance, today models.Date, recentLimit int, skipped []string) Dashboard {
	present, absent := TodayCounts(attendance, today)
	return Dashboard{
		TotalEmployees:  len(employees),
		PresentToday:    present,
		AbsentToday:     absent,
		AttendanceRate:  Rate(present, present+absent),
		RecentEmployees: RecentEmployees(employees, recentLimit),
		Departments:     Departments(employees),
		Skipped:         skipped,
	}
}

// RecentEmployees returns the last n employees, newest first.
func RecentEmployees(employees []models.Employee, n int) []models.Employee {
	if n < 0 {
		n = 0
	}
	start := max(len(employees)-n, 0)
	out := slices.Clone(employees[start:])
	slices.Reverse(out)
	if out == nil {
		out = []models.Employee{}
	}
	return out
}

// Departments counts employees per department, with blank departments as
// "Unassigned". Rows are sorted by count descending, then name.
func Departments(employees []models.Employee) []DepartmentCount {
	counts := make(map[string]int)
	for _, e := range employees {
		counts[e.DepartmentOrUnassigned()]++
	}
	out := make([]DepartmentCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, DepartmentCount{Name: name, Count: n, Percent: Rate(n, len(employees))})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// TodayCounts tallies each employee's first record dated today. Later
// records for the same day are ignored. Any status other than Present
// counts as absent, since the backend accepts free-form status strings.
func TodayCounts(attendance []EmployeeAttendance, today models.Date) (present, absent int) {
	for _, ea := range attendance {
		for _, rec := range ea.Records {
			if rec.Date != today {
				continue
			}
			if rec.Status == models.StatusPresent {
				present++
			} else {
				absent++
			}
			break
		}
	}
	return present, absent
}

// Rate returns part/total as a rounded percentage, or 0 when total is 0.
func Rate(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}

// Summary is the statistics strip above the attendance table.
type Summary struct {
	Present int
	Absent  int
	Total   int
	Rate    int
}

// Summarize counts the statuses in records.
func Summarize(records []models.AttendanceRecord) Summary {
	var s Summary
	for _, r := range records {
		switch r.Status {
		case models.StatusPresent:
			s.Present++
		case models.StatusAbsent:
			s.Absent++
		}
	}
	s.Total = len(records)
	s.Rate = Rate(s.Present, s.Total)
	return s
}

// SortNewestFirst orders records by date descending. Equal dates keep
// their incoming order.
func SortNewestFirst(records []models.AttendanceRecord) {
	slices.SortStableFunc(records, func(a, b models.AttendanceRecord) int {
		switch {
		case a.Date.After(b.Date):
			return -1
		case a.Date.Before(b.Date):
			return 1
		}
		return 0
	})
}

// FindEmployee looks up an identifier case-insensitively. ok is false when
// nothing matches.
func FindEmployee(employees []models.Employee, id string) (models.Employee, bool) {
	want := text.Fold(strings.TrimSpace(id))
	if want == "" {
		return models.Employee{}, false
	}
	for _, e := range employees {
		if text.Fold(e.EmployeeID) == want {
			return e, true
		}
	}
	return models.Employee{}, false
}

// NameIndex maps employee id to display name.
func NameIndex(employees []models.Employee) map[string]string {
	idx := make(map[string]string, len(employees))
	for _, e := range employees {
		idx[e.EmployeeID] = e.Name
	}
	return idx
}
