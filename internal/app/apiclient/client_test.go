package apiclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/hrmslite/internal/app/apiclient"
	"github.com/dalemusser/hrmslite/internal/domain/models"
	"github.com/dalemusser/hrmslite/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:8000", "ftp://host", "http://"} {
		_, err := apiclient.New(raw, nil, zap.NewNop())
		assert.Error(t, err, "base url %q", raw)
	}
}

func TestListEmployees_EmptyIsNonNil(t *testing.T) {
	b := testutil.NewBackend(t)
	c := b.Client(t)

	emps, err := c.ListEmployees(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, emps)
	assert.Empty(t, emps)
	assert.Equal(t, 1, b.Calls("GET /employees/"))
}

func TestCreateEmployee_RoundTrip(t *testing.T) {
	b := testutil.NewBackend(t)
	c := b.Client(t)
	ctx := context.Background()

	emp := models.Employee{EmployeeID: "EMP001", Name: "Ada Lovelace", Email: "ada@example.com", Department: "Engineering"}
	require.NoError(t, c.CreateEmployee(ctx, emp))

	emps, err := c.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, emps, 1)
	assert.Equal(t, emp, emps[0])
}

func TestCreateEmployee_DuplicateSurfacesDetail(t *testing.T) {
	b := testutil.NewBackend(t)
	b.SeedEmployees(models.Employee{EmployeeID: "EMP001", Name: "Ada", Email: "ada@example.com", Department: "Eng"})
	c := b.Client(t)

	err := c.CreateEmployee(context.Background(), models.Employee{EmployeeID: "EMP001", Name: "Other", Email: "x@example.com"})
	require.Error(t, err)

	var apiErr *apiclient.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Employee with this ID or email already exists", apiclient.Message(err, "Failed to save employee"))
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	b := testutil.NewBackend(t)
	c := b.Client(t)

	err := c.UpdateEmployee(context.Background(), "NOPE", models.Employee{EmployeeID: "NOPE", Name: "No One"})
	require.Error(t, err)
	assert.True(t, apiclient.IsNotFound(err))
	assert.Equal(t, "Employee not found", apiclient.Message(err, "fallback"))
}

func TestDeleteEmployee_EscapesID(t *testing.T) {
	b := testutil.NewBackend(t)
	b.SeedEmployees(models.Employee{EmployeeID: "A/B 1", Name: "Slash", Email: "s@example.com"})
	c := b.Client(t)

	require.NoError(t, c.DeleteEmployee(context.Background(), "A/B 1"))
	assert.Empty(t, b.Employees())
	assert.Equal(t, 1, b.Calls("DELETE /employees/{id}"))
}

func TestDeleteEmployee_CascadesAttendance(t *testing.T) {
	b := testutil.NewBackend(t)
	b.SeedEmployees(models.Employee{EmployeeID: "EMP001", Name: "Ada", Email: "ada@example.com"})
	b.SeedAttendance(models.AttendanceRecord{EmployeeID: "EMP001", Date: mustDate(t, "2024-01-15"), Status: models.StatusPresent})
	c := b.Client(t)

	require.NoError(t, c.DeleteEmployee(context.Background(), "EMP001"))
	assert.Empty(t, b.Attendance())
}

func TestMarkAndListAttendance(t *testing.T) {
	b := testutil.NewBackend(t)
	b.SeedEmployees(models.Employee{EmployeeID: "EMP001", Name: "Ada", Email: "ada@example.com"})
	c := b.Client(t)
	ctx := context.Background()

	rec := models.AttendanceRecord{EmployeeID: "EMP001", Date: mustDate(t, "2024-01-15"), Status: models.StatusAbsent}
	require.NoError(t, c.MarkAttendance(ctx, rec))

	recs, err := c.ListAttendance(ctx, "EMP001")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, rec, recs[0], "midnight datetime from the wire normalizes to a calendar date")

	err = c.MarkAttendance(ctx, rec)
	require.Error(t, err)
	assert.Equal(t, "Attendance already marked for EMP001 on 2024-01-15", apiclient.Message(err, ""))
}

func TestListAttendance_UnknownEmployeeIsEmpty(t *testing.T) {
	b := testutil.NewBackend(t)
	c := b.Client(t)

	recs, err := c.ListAttendance(context.Background(), "GHOST")
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestDo_SendsRequestID(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))
	t.Cleanup(srv.Close)

	c, err := apiclient.New(srv.URL, srv.Client(), zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, c.Ping(context.Background()))
	assert.NotEmpty(t, got)
}

func TestMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"string detail", `{"detail":"Employee not found"}`, "Employee not found"},
		{"validation list", `{"detail":[{"msg":"field required"},{"msg":"value is not a valid email address"}]}`, "field required; value is not a valid email address"},
		{"no detail", `{"error":"boom"}`, "fallback"},
		{"not json", `Internal Server Error`, "fallback"},
		{"blank detail", `{"detail":"  "}`, "fallback"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c, err := apiclient.New(srv.URL, srv.Client(), zap.NewNop())
			require.NoError(t, err)
			err = c.Ping(context.Background())
			require.Error(t, err)
			assert.Equal(t, tc.want, apiclient.Message(err, "fallback"))
		})
	}
}

func TestMessage_TransportErrorUsesFallback(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := apiclient.New(url, nil, zap.NewNop())
	require.NoError(t, err)
	_, err = c.ListEmployees(context.Background())
	require.Error(t, err)
	assert.False(t, apiclient.IsNotFound(err))
	assert.Equal(t, "Failed to fetch employees", apiclient.Message(err, "Failed to fetch employees"))
}
