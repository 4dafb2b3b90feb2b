// internal/app/bootstrap/routes.go
package bootstrap

import (
	"fmt"
	"net/http"

	"github.com/dalemusser/hrmslite/internal/app/aggregate"
	attendancefeature "github.com/dalemusser/hrmslite/internal/app/features/attendance"
	dashboardfeature "github.com/dalemusser/hrmslite/internal/app/features/dashboard"
	employeesfeature "github.com/dalemusser/hrmslite/internal/app/features/employees"
	errorsfeature "github.com/dalemusser/hrmslite/internal/app/features/errors"
	healthfeature "github.com/dalemusser/hrmslite/internal/app/features/health"
	"github.com/dalemusser/hrmslite/internal/app/system/flash"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, the backend client, and the
// Startup hook are ready. HRMS Lite initializes the template engine and
// the flash store, wraps everything in CSRF protection, and mounts the
// dashboard, employees and attendance features.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	if deps.API == nil {
		return nil, fmt.Errorf("build handler: api client is nil")
	}

	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	if err := flash.InitStore(appCfg.SessionKey, appCfg.SessionName, secure, logger); err != nil {
		logger.Error("flash store init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	protect, err := csrfMiddleware(appCfg.CSRFKey, secure, logger)
	if err != nil {
		return nil, err
	}

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)
	errorsHandler := errorsfeature.NewHandler()

	opts := aggregate.Options{
		Concurrency: appCfg.FanoutConcurrency,
		RecentLimit: appCfg.RecentLimit,
		Log:         logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(errLog.Recoverer)

	r.NotFound(errorsHandler.NotFound)
	r.MethodNotAllowed(errorsHandler.MethodNotAllowed)

	// Health check endpoint for load balancers and orchestrators.
	// Outside CSRF so probes never need a token cookie.
	healthHandler := healthfeature.NewHandler(deps.API, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	r.Group(func(r chi.Router) {
		if !secure {
			r.Use(plaintext)
		}
		r.Use(protect)

		dashboardHandler := dashboardfeature.NewHandler(deps.API, opts, logger)
		r.Mount("/", dashboardfeature.Routes(dashboardHandler))

		employeesHandler := employeesfeature.NewHandler(deps.API, errLog, logger)
		r.Mount("/employees", employeesfeature.Routes(employeesHandler))

		attendanceHandler := attendancefeature.NewHandler(deps.API, opts, errLog, logger)
		r.Mount("/attendance", attendancefeature.Routes(attendanceHandler))
	})

	return r, nil
}

// csrfMiddleware builds the gorilla/csrf protector. A blank key yields a
// random one, so tokens do not survive a restart.
func csrfMiddleware(key string, secure bool, logger *zap.Logger) (func(http.Handler) http.Handler, error) {
	raw := []byte(key)
	if key == "" {
		raw = securecookie.GenerateRandomKey(32)
		if raw == nil {
			return nil, fmt.Errorf("generate csrf key: no randomness available")
		}
		logger.Warn("csrf_key not set; using a random key for this process")
	}
	return csrf.Protect(raw,
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(csrfFailure)),
	), nil
}

// plaintext marks requests as plain HTTP so the origin check does not
// demand TLS during local development.
func plaintext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}

func csrfFailure(w http.ResponseWriter, r *http.Request) {
	errorsfeature.Render(w, r, http.StatusForbidden, "Request expired",
		"Your form session expired. Please go back, reload the page and try again.", "/")
}
