package dashboard_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/hrmslite/internal/app/aggregate"
	"github.com/dalemusser/hrmslite/internal/app/features/dashboard"
	"github.com/dalemusser/hrmslite/internal/domain/models"
	"github.com/dalemusser/hrmslite/internal/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestHandler(t *testing.T, b *testutil.Backend, logger *zap.Logger) *dashboard.Handler {
	t.Helper()
	h := dashboard.NewHandler(b.Client(t), aggregate.Options{Concurrency: 2}, logger)
	h.Now = func() time.Time { return time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local) }
	return h
}

func TestNewHandler(t *testing.T) {
	h := newTestHandler(t, testutil.NewBackend(t), zap.NewNop())
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
}

func TestServeDashboard_FetchesEveryEmployee(t *testing.T) {
	b := testutil.NewBackend(t)
	b.SeedEmployees(
		models.Employee{EmployeeID: "EMP001", Name: "Ada", Email: "ada@example.com", Department: "Eng"},
		models.Employee{EmployeeID: "EMP002", Name: "Grace", Email: "grace@example.com", Department: "Eng"},
		models.Employee{EmployeeID: "EMP003", Name: "Linus", Email: "linus@example.com", Department: "Ops"},
	)
	handler := newTestHandler(t, b, zap.NewNop())

	rec := testutil.NewRecorder()
	// Template rendering may panic in tests without an initialized engine.
	testutil.RenderSafely(func() {
		handler.ServeDashboard(rec, testutil.NewRequest(http.MethodGet, "/"))
	})

	if got := b.Calls("GET /employees/"); got != 1 {
		t.Errorf("employee list calls = %d, want 1", got)
	}
	if got := b.Calls("GET /attendance/{id}"); got != 3 {
		t.Errorf("attendance calls = %d, want 3", got)
	}
}

func TestServeDashboard_SkippedEmployeeIsLogged(t *testing.T) {
	b := testutil.NewBackend(t)
	b.SeedEmployees(
		models.Employee{EmployeeID: "EMP001", Name: "Ada", Email: "ada@example.com"},
		models.Employee{EmployeeID: "EMP002", Name: "Grace", Email: "grace@example.com"},
	)
	b.FailAttendanceFor("EMP002", http.StatusInternalServerError)

	core, logs := observer.New(zapcore.WarnLevel)
	handler := newTestHandler(t, b, zap.New(core))

	testutil.RenderSafely(func() {
		handler.ServeDashboard(testutil.NewRecorder(), testutil.NewRequest(http.MethodGet, "/"))
	})

	warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
	if len(warns) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warns))
	}
	if warns[0].ContextMap()["employee_id"] != "EMP002" {
		t.Errorf("warning employee_id = %v", warns[0].ContextMap()["employee_id"])
	}
}

func TestServeDashboard_EmployeeListFailure(t *testing.T) {
	b := testutil.NewBackend(t)
	b.FailEmployeeList(http.StatusInternalServerError)

	core, logs := observer.New(zapcore.ErrorLevel)
	handler := newTestHandler(t, b, zap.New(core))

	testutil.RenderSafely(func() {
		handler.ServeDashboard(testutil.NewRecorder(), testutil.NewRequest(http.MethodGet, "/"))
	})

	if b.Calls("GET /attendance/{id}") != 0 {
		t.Error("expected no attendance calls after list failure")
	}
	if logs.FilterMessage("load dashboard failed").Len() != 1 {
		t.Error("expected the failure to be logged")
	}
}
