package aggregate_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/dalemusser/hrmslite/internal/app/aggregate"
	"github.com/dalemusser/hrmslite/internal/domain/models"
	"github.com/dalemusser/hrmslite/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func seed(t *testing.T, b *testutil.Backend, today models.Date) {
	t.Helper()
	b.SeedEmployees(
		models.Employee{EmployeeID: "EMP001", Name: "Ada", Email: "ada@example.com", Department: "Engineering"},
		models.Employee{EmployeeID: "EMP002", Name: "Grace", Email: "grace@example.com", Department: "Engineering"},
		models.Employee{EmployeeID: "EMP003", Name: "Linus", Email: "linus@example.com", Department: "Ops"},
		models.Employee{EmployeeID: "EMP004", Name: "Barbara", Email: "barbara@example.com", Department: ""},
	)
	b.SeedAttendance(
		models.AttendanceRecord{EmployeeID: "EMP001", Date: today, Status: models.StatusPresent},
		models.AttendanceRecord{EmployeeID: "EMP002", Date: today, Status: models.StatusAbsent},
		models.AttendanceRecord{EmployeeID: "EMP003", Date: today, Status: models.StatusPresent},
		models.AttendanceRecord{EmployeeID: "EMP004", Date: day(t, "2024-01-14"), Status: models.StatusPresent},
	)
}

func TestLoadDashboard(t *testing.T) {
	today := day(t, "2024-01-15")
	for _, concurrency := range []int{1, 2, 8} {
		b := testutil.NewBackend(t)
		seed(t, b, today)

		d, err := aggregate.LoadDashboard(context.Background(), b.Client(t), today, aggregate.Options{Concurrency: concurrency})
		require.NoError(t, err)

		assert.Equal(t, 4, d.TotalEmployees)
		assert.Equal(t, 2, d.PresentToday, "concurrency %d", concurrency)
		assert.Equal(t, 1, d.AbsentToday, "concurrency %d", concurrency)
		assert.Equal(t, 67, d.AttendanceRate)
		assert.Empty(t, d.Skipped)
		assert.Equal(t, "EMP004", d.RecentEmployees[0].EmployeeID)
		assert.Equal(t, 4, b.Calls("GET /attendance/{id}"))
	}
}

func TestLoadDashboard_PartialFailureIsSkipped(t *testing.T) {
	today := day(t, "2024-01-15")
	b := testutil.NewBackend(t)
	seed(t, b, today)
	b.FailAttendanceFor("EMP002", http.StatusInternalServerError)

	d, err := aggregate.LoadDashboard(context.Background(), b.Client(t), today, aggregate.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"EMP002"}, d.Skipped)
	assert.Equal(t, 2, d.PresentToday)
	assert.Equal(t, 0, d.AbsentToday, "the failed employee counts as unmarked")
	assert.Equal(t, 4, d.TotalEmployees)
}

func TestLoadDashboard_EmployeeListFailure(t *testing.T) {
	b := testutil.NewBackend(t)
	b.FailEmployeeList(http.StatusServiceUnavailable)

	_, err := aggregate.LoadDashboard(context.Background(), b.Client(t), day(t, "2024-01-15"), aggregate.Options{})
	require.Error(t, err)
	assert.Zero(t, b.Calls("GET /attendance/{id}"))
}

func TestLoadAllAttendance(t *testing.T) {
	today := day(t, "2024-01-15")
	b := testutil.NewBackend(t)
	seed(t, b, today)
	b.FailAttendanceFor("EMP003", http.StatusBadGateway)

	recs, skipped, err := aggregate.LoadAllAttendance(context.Background(), b.Client(t), aggregate.Options{Concurrency: 3})
	require.NoError(t, err)

	assert.Equal(t, []string{"EMP003"}, skipped)
	var ids []string
	for _, r := range recs {
		ids = append(ids, r.EmployeeID)
	}
	assert.Equal(t, []string{"EMP001", "EMP002", "EMP004"}, ids)
}

type staticSource struct {
	emps []models.Employee
	recs map[string][]models.AttendanceRecord
}

func (s staticSource) ListEmployees(context.Context) ([]models.Employee, error) { return s.emps, nil }

func (s staticSource) ListAttendance(_ context.Context, id string) ([]models.AttendanceRecord, error) {
	return s.recs[id], nil
}

func TestLoadDashboard_FakeSource(t *testing.T) {
	today := day(t, "2024-01-15")
	src := staticSource{
		emps: []models.Employee{{EmployeeID: "A"}, {EmployeeID: "B"}},
		recs: map[string][]models.AttendanceRecord{
			"A": {{EmployeeID: "A", Date: today, Status: models.StatusAbsent}},
		},
	}

	d, err := aggregate.LoadDashboard(context.Background(), src, today, aggregate.Options{Concurrency: 1, RecentLimit: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, d.AbsentToday)
	assert.Equal(t, 0, d.AttendanceRate)
	require.Len(t, d.RecentEmployees, 1)
	assert.Equal(t, "B", d.RecentEmployees[0].EmployeeID)
}
