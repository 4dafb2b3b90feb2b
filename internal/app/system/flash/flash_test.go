package flash_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/hrmslite/internal/app/system/flash"
	"go.uber.org/zap"
)

const testKey = "0123456789abcdef0123456789abcdef"

func initStore(t *testing.T) {
	t.Helper()
	if err := flash.InitStore(testKey, "", false, zap.NewNop()); err != nil {
		t.Fatalf("InitStore: %v", err)
	}
	t.Cleanup(func() { flash.Store = nil })
}

// carry copies Set-Cookie headers from a response onto a new request.
func carry(rec *httptest.ResponseRecorder, target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestInitStore_EmptyKey(t *testing.T) {
	if err := flash.InitStore("", "", false, zap.NewNop()); err == nil {
		t.Error("expected error for empty key")
	}
}

func TestSuccess_RoundTrip(t *testing.T) {
	initStore(t)

	post := httptest.NewRequest(http.MethodPost, "/employees", nil)
	rec := httptest.NewRecorder()
	flash.Success(rec, post, "Employee added successfully!")

	get := carry(rec, "/employees")
	rec2 := httptest.NewRecorder()
	b := flash.Pop(rec2, get)

	if string(b.Success) != "Employee added successfully!" {
		t.Errorf("Success = %q", b.Success)
	}
	if b.Error != "" {
		t.Errorf("Error = %q, want empty", b.Error)
	}

	// The banner is consumed: the next request carrying the updated cookie sees nothing.
	again := carry(rec2, "/employees")
	if b := flash.Pop(httptest.NewRecorder(), again); b.Any() {
		t.Errorf("expected banners to be consumed, got %+v", b)
	}
}

func TestError_IsSanitized(t *testing.T) {
	initStore(t)

	rec := httptest.NewRecorder()
	flash.Error(rec, httptest.NewRequest(http.MethodPost, "/attendance", nil), `<script>x()</script>Attendance already marked`)

	b := flash.Pop(httptest.NewRecorder(), carry(rec, "/attendance"))
	if strings.Contains(string(b.Error), "<script") {
		t.Errorf("expected script stripped, got %q", b.Error)
	}
	if !strings.Contains(string(b.Error), "Attendance already marked") {
		t.Errorf("expected message preserved, got %q", b.Error)
	}
}

func TestPop_NoStore(t *testing.T) {
	flash.Store = nil
	if b := flash.Pop(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)); b.Any() {
		t.Errorf("expected no banners, got %+v", b)
	}
}
