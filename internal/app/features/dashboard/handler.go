// internal/app/features/dashboard/handler.go
package dashboard

import (
	"time"

	"github.com/dalemusser/hrmslite/internal/app/aggregate"
	"go.uber.org/zap"
)

// Handler serves the dashboard at "/".
type Handler struct {
	API aggregate.Source
	Log *zap.Logger

	// Opts tunes the per-employee fan-out. Log is filled from Log.
	Opts aggregate.Options

	// Now is the clock used to decide "today". Defaults to time.Now.
	Now func() time.Time
}

func NewHandler(api aggregate.Source, opts aggregate.Options, logger *zap.Logger) *Handler {
	opts.Log = logger
	return &Handler{
		API:  api,
		Log:  logger,
		Opts: opts,
		Now:  time.Now,
	}
}
