// internal/app/aggregate/aggregate.go
//
// Package aggregate builds the cross-employee views: the dashboard
// statistics and the "all records" attendance listing. Both fetch the
// employee list and then each employee's attendance, tolerating failures
// on individual employees.
package aggregate

import (
	"context"
	"fmt"

	"github.com/dalemusser/hrmslite/internal/app/system/fanout"
	"github.com/dalemusser/hrmslite/internal/app/system/stats"
	"github.com/dalemusser/hrmslite/internal/domain/models"
	"go.uber.org/zap"
)

// DefaultConcurrency bounds the per-employee attendance fetches.
const DefaultConcurrency = 4

// Source is the part of the API client the aggregator reads from.
type Source interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	ListAttendance(ctx context.Context, employeeID string) ([]models.AttendanceRecord, error)
}

// Options tune a load. Zero values pick the defaults.
type Options struct {
	Concurrency int // 1 fetches strictly one employee at a time
	RecentLimit int
	Log         *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Concurrency < 1 {
		o.Concurrency = DefaultConcurrency
	}
	if o.RecentLimit < 1 {
		o.RecentLimit = stats.DefaultRecentLimit
	}
	if o.Log == nil {
		o.Log = zap.NewNop()
	}
	return o
}

// LoadDashboard fetches everything the dashboard shows. Only a failure to
// list employees is returned as an error; per-employee attendance failures
// end up in Dashboard.Skipped.
func LoadDashboard(ctx context.Context, src Source, today models.Date, opts Options) (stats.Dashboard, error) {
	opts = opts.withDefaults()

	emps, err := src.ListEmployees(ctx)
	if err != nil {
		return stats.Dashboard{}, fmt.Errorf("load dashboard: %w", err)
	}

	att, skipped := fetchAttendance(ctx, src, emps, opts)
	return stats.BuildDashboard(emps, att, today, opts.RecentLimit, skipped), nil
}

// LoadAllAttendance returns every employee's records concatenated in
// employee-list order, plus the ids whose fetch failed.
func LoadAllAttendance(ctx context.Context, src Source, opts Options) ([]models.AttendanceRecord, []string, error) {
	opts = opts.withDefaults()

	emps, err := src.ListEmployees(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load all attendance: %w", err)
	}
	return LoadAttendanceFor(ctx, src, emps, opts)
}

// LoadAttendanceFor is LoadAllAttendance for an employee list the caller
// already holds.
func LoadAttendanceFor(ctx context.Context, src Source, emps []models.Employee, opts Options) ([]models.AttendanceRecord, []string, error) {
	opts = opts.withDefaults()

	att, skipped := fetchAttendance(ctx, src, emps, opts)
	records := make([]models.AttendanceRecord, 0, len(att))
	for _, ea := range att {
		records = append(records, ea.Records...)
	}
	return records, skipped, nil
}

func fetchAttendance(ctx context.Context, src Source, emps []models.Employee, opts Options) ([]stats.EmployeeAttendance, []string) {
	ids := make([]string, len(emps))
	for i, e := range emps {
		ids[i] = e.EmployeeID
	}

	results := fanout.Each(ctx, ids, opts.Concurrency, src.ListAttendance)

	out := make([]stats.EmployeeAttendance, len(emps))
	var skipped []string
	for i, r := range results {
		out[i].Employee = emps[i]
		if !r.OK() {
			skipped = append(skipped, r.Key)
			opts.Log.Warn("attendance fetch failed; employee skipped",
				zap.String("employee_id", r.Key),
				zap.Error(r.Err))
			continue
		}
		out[i].Records = r.Value
	}
	return out, skipped
}
