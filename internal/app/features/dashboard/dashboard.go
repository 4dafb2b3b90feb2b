// internal/app/features/dashboard/dashboard.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/hrmslite/internal/app/aggregate"
	"github.com/dalemusser/hrmslite/internal/app/system/formutil"
	"github.com/dalemusser/hrmslite/internal/app/system/stats"
	"github.com/dalemusser/hrmslite/internal/app/system/timeouts"
	"github.com/dalemusser/hrmslite/internal/app/system/viewdata"
	"github.com/dalemusser/hrmslite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type dashboardData struct {
	viewdata.BaseVM
	formutil.Base
	stats.Dashboard

	Today  models.Date
	Loaded bool
}

// SkippedCount is how many employees' attendance could not be fetched.
func (d dashboardData) SkippedCount() int { return len(d.Skipped) }

// ServeDashboard renders the stat cards, recent employees and the
// department distribution. Every load re-fetches from the backend.
//
// Route: GET /
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "load dashboard")
	defer cancel()

	today := models.Today(h.Now())
	data := dashboardData{
		BaseVM: viewdata.NewBaseVM(w, r, "Dashboard", "/"),
		Today:  today,
	}

	d, err := aggregate.LoadDashboard(ctx, h.API, today, h.Opts)
	if err != nil {
		h.Log.Error("load dashboard failed", zap.Error(err))
		data.SetError("Failed to load dashboard data")
		templates.Render(w, r, "dashboard", data)
		return
	}
	if len(d.Skipped) > 0 {
		h.Log.Debug("dashboard served with skipped employees", zap.Strings("employee_ids", d.Skipped))
	}

	data.Dashboard = d
	data.Loaded = true
	templates.Render(w, r, "dashboard", data)
}
