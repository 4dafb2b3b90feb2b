// internal/app/features/errors/logger.go
package errors

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ErrorLogger logs a failure with request context and shows the user a
// friendly page instead of the raw error.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorLogger{Log: logger}
}

// LogServerError logs msg and err at error level and renders a 500 page
// with userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Error(msg, e.fields(r, err)...)
	Render(w, r, http.StatusInternalServerError, "Something went wrong", userMsg, backURL)
}

// LogBadRequest logs at warn level and renders a 400 page with userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Warn(msg, e.fields(r, err)...)
	Render(w, r, http.StatusBadRequest, "Bad request", userMsg, backURL)
}

// LogNotFound logs at info level and renders a 404 page with userMsg.
func (e *ErrorLogger) LogNotFound(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Info(msg, e.fields(r, err)...)
	Render(w, r, http.StatusNotFound, "Not found", userMsg, backURL)
}

// Recoverer turns a handler panic into a logged 500 page.
// http.ErrAbortHandler is re-raised so net/http can abort the response.
func (e *ErrorLogger) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rv := recover()
			if rv == nil {
				return
			}
			if rv == http.ErrAbortHandler {
				panic(rv)
			}
			e.LogServerError(w, r, "panic recovered", fmt.Errorf("panic: %v", rv),
				"An unexpected error occurred. Please try again.", "/")
		}()
		next.ServeHTTP(w, r)
	})
}

func (e *ErrorLogger) fields(r *http.Request, err error) []zap.Field {
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if reqID := middleware.GetReqID(r.Context()); reqID != "" {
		fields = append(fields, zap.String("request_id", reqID))
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	return fields
}
