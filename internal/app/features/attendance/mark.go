// internal/app/features/attendance/mark.go
package attendance

import (
	"context"
	"net/http"

	"github.com/dalemusser/hrmslite/internal/app/apiclient"
	"github.com/dalemusser/hrmslite/internal/app/system/flash"
	"github.com/dalemusser/hrmslite/internal/app/system/inputval"
	"github.com/dalemusser/hrmslite/internal/app/system/timeouts"
	"github.com/dalemusser/hrmslite/internal/app/system/viewdata"
	"github.com/dalemusser/hrmslite/internal/domain/models"
	"go.uber.org/zap"
)

// HandleMark records one attendance entry. Bad input re-renders the page
// with field errors and no backend call. Otherwise the outcome is flashed
// and the page reloads with the filter reset.
//
// Route: POST /attendance
func (h *Handler) HandleMark(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/attendance")
		return
	}

	form := formFromRequest(r)
	fe := inputval.Struct(&form)

	day, err := models.ParseDate(form.Date)
	if err == nil && day.After(models.Today(h.Now())) {
		if fe == nil {
			fe = inputval.FieldErrors{}
		}
		fe.Add("date", msgFutureDate)
	}

	if fe.Any() {
		data := pageData{
			BaseVM: viewdata.NewBaseVM(w, r, "Attendance", "/"),
			Form:   form,
		}
		data.SetFieldErrors(fe, msgInvalidForm)
		h.renderPage(w, r, &data, "", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rec := models.AttendanceRecord{
		EmployeeID: form.EmployeeID,
		Date:       day,
		Status:     models.AttendanceStatus(form.Status),
	}
	if err := h.API.MarkAttendance(ctx, rec); err != nil {
		h.Log.Warn("mark attendance failed",
			zap.String("employee_id", rec.EmployeeID),
			zap.String("date", rec.Date.String()),
			zap.Error(err))
		flash.Error(w, r, apiclient.Message(err, failMark))
	} else {
		flash.Success(w, r, msgMarked)
	}

	http.Redirect(w, r, "/attendance", http.StatusSeeOther)
}
