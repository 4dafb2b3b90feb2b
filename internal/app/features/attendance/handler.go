// internal/app/features/attendance/handler.go
package attendance

import (
	"context"
	"time"

	"github.com/dalemusser/hrmslite/internal/app/aggregate"
	uierrors "github.com/dalemusser/hrmslite/internal/app/features/errors"
	"github.com/dalemusser/hrmslite/internal/domain/models"
	"go.uber.org/zap"
)

// API is the part of the backend client the attendance page uses.
type API interface {
	aggregate.Source
	MarkAttendance(ctx context.Context, rec models.AttendanceRecord) error
}

// Handler is the feature-level entry point for Attendance.
type Handler struct {
	API    API
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger

	// Opts tunes the "all records" fan-out. Log is filled from Log.
	Opts aggregate.Options

	// Now is the clock used for "today". Defaults to time.Now.
	Now func() time.Time
}

// NewHandler constructs a new Attendance handler.
func NewHandler(api API, opts aggregate.Options, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	opts.Log = logger
	return &Handler{
		API:    api,
		ErrLog: errLog,
		Log:    logger,
		Opts:   opts,
		Now:    time.Now,
	}
}
