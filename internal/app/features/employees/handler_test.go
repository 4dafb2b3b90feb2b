package employees_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/dalemusser/hrmslite/internal/app/features/employees"
	uierrors "github.com/dalemusser/hrmslite/internal/app/features/errors"
	"github.com/dalemusser/hrmslite/internal/domain/models"
	"github.com/dalemusser/hrmslite/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var ada = models.Employee{EmployeeID: "EMP001", Name: "Ada Lovelace", Email: "ada@example.com", Department: "Engineering"}

func newTestRouter(t *testing.T, b *testutil.Backend) http.Handler {
	t.Helper()
	logger := zap.NewNop()
	h := employees.NewHandler(b.Client(t), uierrors.NewErrorLogger(logger), logger)
	r := chi.NewRouter()
	r.Mount("/employees", employees.Routes(h))
	return r
}

func serve(router http.Handler, req *http.Request) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	// Template rendering may panic in tests without an initialized engine.
	testutil.RenderSafely(func() { router.ServeHTTP(rec, req) })
	return rec
}

func TestNewHandler(t *testing.T) {
	h := employees.NewHandler(testutil.NewBackend(t).Client(t), uierrors.NewErrorLogger(zap.NewNop()), zap.NewNop())
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
}

func TestServeList_FetchesOnce(t *testing.T) {
	b := testutil.NewBackend(t)
	b.SeedEmployees(ada)
	router := newTestRouter(t, b)

	serve(router, testutil.NewRequest(http.MethodGet, "/employees"))

	if got := b.Calls("GET /employees/"); got != 1 {
		t.Errorf("list calls = %d, want 1", got)
	}
}

func TestHandleCreate_Success(t *testing.T) {
	b := testutil.NewBackend(t)
	router := newTestRouter(t, b)

	form := url.Values{
		"employee_id": {"  EMP002 "},
		"name":        {"Grace Hopper"},
		"email":       {"grace@example.com"},
		"department":  {"Research"},
	}
	rec := serve(router, testutil.NewFormRequest(http.MethodPost, "/employees", form))

	rec.AssertRedirect(t, "/employees")
	emps := b.Employees()
	if len(emps) != 1 {
		t.Fatalf("expected 1 employee, got %d", len(emps))
	}
	want := models.Employee{EmployeeID: "EMP002", Name: "Grace Hopper", Email: "grace@example.com", Department: "Research"}
	if emps[0] != want {
		t.Errorf("stored %+v, want %+v", emps[0], want)
	}
}

func TestHandleCreate_ValidationBlocksNetwork(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
	}{
		{"all empty", url.Values{}},
		{"short name", url.Values{"employee_id": {"E1"}, "name": {"A"}, "email": {"a@b.co"}, "department": {"Ops"}}},
		{"bad email", url.Values{"employee_id": {"E1"}, "name": {"Ann"}, "email": {"a@b"}, "department": {"Ops"}}},
		{"blank department", url.Values{"employee_id": {"E1"}, "name": {"Ann"}, "email": {"a@b.co"}, "department": {"   "}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.NewBackend(t)
			router := newTestRouter(t, b)

			rec := serve(router, testutil.NewFormRequest(http.MethodPost, "/employees", tt.form))

			if rec.Code == http.StatusSeeOther {
				t.Error("expected the form to be re-rendered, got a redirect")
			}
			if got := b.Calls("POST /employees/"); got != 0 {
				t.Errorf("create calls = %d, want 0", got)
			}
		})
	}
}

func TestHandleCreate_DuplicateDoesNotRedirect(t *testing.T) {
	b := testutil.NewBackend(t)
	b.SeedEmployees(ada)
	router := newTestRouter(t, b)

	form := url.Values{"employee_id": {"EMP001"}, "name": {"Someone"}, "email": {"someone@example.com"}, "department": {"Ops"}}
	rec := serve(router, testutil.NewFormRequest(http.MethodPost, "/employees", form))

	if rec.Code == http.StatusSeeOther {
		t.Error("expected re-render on backend rejection")
	}
	if got := b.Calls("POST /employees/"); got != 1 {
		t.Errorf("create calls = %d, want 1", got)
	}
	if len(b.Employees()) != 1 {
		t.Error("directory should be unchanged")
	}
}

func TestHandleEdit_OnlyDepartmentChanges(t *testing.T) {
	b := testutil.NewBackend(t)
	b.SeedEmployees(ada)
	router := newTestRouter(t, b)

	// A crafted form tries to change the read-only fields too.
	form := url.Values{
		"employee_id": {"HACKED"},
		"name":        {"Someone Else"},
		"email":       {"else@example.com"},
		"department":  {"Research"},
	}
	rec := serve(router, testutil.NewFormRequest(http.MethodPost, "/employees/EMP001/edit", form))

	rec.AssertRedirect(t, "/employees")
	got := b.Employees()[0]
	want := ada
	want.Department = "Research"
	if got != want {
		t.Errorf("stored %+v, want %+v", got, want)
	}
}

func TestHandleEdit_DeletedMeanwhileRedirects(t *testing.T) {
	b := testutil.NewBackend(t)
	b.SeedEmployees(ada)
	b.FailWrite("PUT /employees/{id}", http.StatusNotFound)
	router := newTestRouter(t, b)

	rec := serve(router, testutil.NewFormRequest(http.MethodPost, "/employees/EMP001/edit", url.Values{"department": {"Ops"}}))

	rec.AssertRedirect(t, "/employees")
	if got := b.Calls("PUT /employees/{id}"); got != 1 {
		t.Errorf("update calls = %d, want 1", got)
	}
}

func TestHandleEdit_UnknownEmployee(t *testing.T) {
	b := testutil.NewBackend(t)
	router := newTestRouter(t, b)

	rec := serve(router, testutil.NewFormRequest(http.MethodPost, "/employees/NOPE/edit", url.Values{"department": {"Ops"}}))

	rec.AssertRedirect(t, "/employees")
	if got := b.Calls("PUT /employees/{id}"); got != 0 {
		t.Errorf("update calls = %d, want 0", got)
	}
}

func TestServeEdit_UnknownEmployeeIs404(t *testing.T) {
	b := testutil.NewBackend(t)
	router := newTestRouter(t, b)

	rec := serve(router, testutil.NewRequest(http.MethodGet, "/employees/NOPE/edit"))

	rec.AssertStatus(t, http.StatusNotFound)
}

func TestDeleteModal_UnknownEmployeeHXRedirects(t *testing.T) {
	b := testutil.NewBackend(t)
	router := newTestRouter(t, b)

	req := testutil.NewRequest(http.MethodGet, "/employees/NOPE/delete")
	req.Header.Set("HX-Request", "true")
	rec := serve(router, req)

	rec.AssertStatus(t, http.StatusOK)
	if got := rec.Header().Get("HX-Redirect"); got != "/employees" {
		t.Errorf("HX-Redirect = %q, want /employees", got)
	}
}

func TestHandleEdit_BlankDepartment(t *testing.T) {
	b := testutil.NewBackend(t)
	b.SeedEmployees(ada)
	router := newTestRouter(t, b)

	rec := serve(router, testutil.NewFormRequest(http.MethodPost, "/employees/EMP001/edit", url.Values{"department": {""}}))

	if rec.Code == http.StatusSeeOther {
		t.Error("expected re-render for blank department")
	}
	if got := b.Calls("PUT /employees/{id}"); got != 0 {
		t.Errorf("update calls = %d, want 0", got)
	}
}

func TestDeleteModal_CancelMakesNoDelete(t *testing.T) {
	b := testutil.NewBackend(t)
	b.SeedEmployees(ada)
	router := newTestRouter(t, b)

	req := testutil.NewRequest(http.MethodGet, "/employees/EMP001/delete")
	req.Header.Set("HX-Request", "true")
	serve(router, req)

	// Cancel is a link back to the list.
	serve(router, testutil.NewRequest(http.MethodGet, "/employees"))

	if got := b.Calls("DELETE /employees/{id}"); got != 0 {
		t.Errorf("delete calls = %d, want 0", got)
	}
	if len(b.Employees()) != 1 {
		t.Error("list should be unchanged")
	}
}

func TestHandleDelete_ConfirmIssuesOneDelete(t *testing.T) {
	b := testutil.NewBackend(t)
	b.SeedEmployees(ada)
	router := newTestRouter(t, b)

	rec := serve(router, testutil.NewFormRequest(http.MethodPost, "/employees/EMP001/delete", url.Values{}))
	rec.AssertRedirect(t, "/employees")

	// Following the redirect re-fetches the list once.
	serve(router, testutil.NewRequest(http.MethodGet, rec.Header().Get("Location")))

	if got := b.Calls("DELETE /employees/{id}"); got != 1 {
		t.Errorf("delete calls = %d, want 1", got)
	}
	if got := b.Calls("GET /employees/"); got != 1 {
		t.Errorf("list calls = %d, want 1", got)
	}
	if len(b.Employees()) != 0 {
		t.Error("expected employee removed")
	}
}

func TestHandleDelete_FailureStillRedirects(t *testing.T) {
	b := testutil.NewBackend(t)
	router := newTestRouter(t, b)

	rec := serve(router, testutil.NewFormRequest(http.MethodPost, "/employees/GHOST/delete", url.Values{}))

	rec.AssertRedirect(t, "/employees")
	if got := b.Calls("DELETE /employees/{id}"); got != 1 {
		t.Errorf("delete calls = %d, want 1", got)
	}
}

func TestHandleDelete_HonorsSafeReturn(t *testing.T) {
	b := testutil.NewBackend(t)
	b.SeedEmployees(ada)
	router := newTestRouter(t, b)

	rec := serve(router, testutil.NewFormRequest(http.MethodPost, "/employees/EMP001/delete",
		url.Values{"return": {"https://evil.example/"}}))

	rec.AssertRedirect(t, "/employees")
}
