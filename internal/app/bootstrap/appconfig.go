// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like ports, TLS,
// logging level and request body limits. AppConfig carries what is
// specific to HRMS Lite: where the backend lives, how banners behave and
// how wide the attendance fan-out may go.
type AppConfig struct {
	// HRMS backend
	APIBaseURL string // Absolute http(s) URL of the REST backend (e.g., http://localhost:8000)

	// Flash cookie configuration
	SessionKey  string // Secret key for signing the flash cookie (must be strong in production)
	SessionName string // Cookie name for flash messages (default: hrmslite-flash)

	// CSRF protection
	CSRFKey string // 32-byte key for gorilla/csrf; blank generates a random key at boot

	// UI behaviour
	BannerDismiss   time.Duration // How long success/error banners stay visible
	RecentLimit     int           // Number of recent employees on the dashboard
	DisplayTimezone string        // IANA zone used to normalize attendance dates (blank = server local)

	// Aggregation
	FanoutConcurrency int // Max concurrent per-employee attendance fetches (1 = sequential)
}
