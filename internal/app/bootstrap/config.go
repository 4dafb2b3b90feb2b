// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/hrmslite/internal/app/aggregate"
	"github.com/dalemusser/hrmslite/internal/app/system/stats"
	"github.com/dalemusser/hrmslite/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// defaultSessionKey is accepted in dev only.
const defaultSessionKey = "dev-only-change-me-please-0123456789ABCDEF"

// appConfigKeys defines the configuration keys for HRMS Lite.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: api_base_url, session_name, etc.
//   - Environment variables: HRMSLITE_API_BASE_URL, HRMSLITE_SESSION_NAME, etc.
//   - Command-line flags: --api_base_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "api_base_url", Default: "http://localhost:8000", Desc: "Base URL of the HRMS REST backend"},
	{Name: "session_key", Default: defaultSessionKey, Desc: "Flash cookie signing key (must be strong in production)"},
	{Name: "session_name", Default: "hrmslite-flash", Desc: "Flash cookie name"},
	{Name: "csrf_key", Default: "", Desc: "CSRF key, 32 bytes (blank generates a random key at boot)"},

	{Name: "banner_dismiss", Default: "3s", Desc: "Banner auto-dismiss delay (e.g., 3s, 1500ms)"},
	{Name: "recent_limit", Default: stats.DefaultRecentLimit, Desc: "Recent employees shown on the dashboard"},
	{Name: "display_timezone", Default: "", Desc: "IANA timezone for attendance dates (blank means server local)"},

	{Name: "fanout_concurrency", Default: aggregate.DefaultConcurrency, Desc: "Max concurrent attendance fetches (1 = sequential)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, HRMSLITE_* for app) and
// command-line flags, merged with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "HRMSLITE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		APIBaseURL:  appValues.String("api_base_url"),
		SessionKey:  appValues.String("session_key"),
		SessionName: appValues.String("session_name"),
		CSRFKey:     appValues.String("csrf_key"),

		BannerDismiss:   appValues.Duration("banner_dismiss", viewdata.DefaultBannerDismiss),
		RecentLimit:     appValues.Int("recent_limit"),
		DisplayTimezone: appValues.String("display_timezone"),

		FanoutConcurrency: appValues.Int("fanout_concurrency"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// Production additionally requires explicit secrets, since the dev
// defaults would let anyone forge the flash cookie or CSRF token.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := validateAPIBaseURL(appCfg.APIBaseURL); err != nil {
		logger.Error("invalid api_base_url", zap.String("api_base_url", appCfg.APIBaseURL), zap.Error(err))
		return err
	}
	if _, err := loadLocation(appCfg.DisplayTimezone); err != nil {
		return fmt.Errorf("invalid display_timezone %q: %w", appCfg.DisplayTimezone, err)
	}
	if appCfg.FanoutConcurrency < 1 {
		return fmt.Errorf("fanout_concurrency must be at least 1, got %d", appCfg.FanoutConcurrency)
	}
	if appCfg.RecentLimit < 1 {
		return fmt.Errorf("recent_limit must be at least 1, got %d", appCfg.RecentLimit)
	}
	if appCfg.BannerDismiss <= 0 {
		return fmt.Errorf("banner_dismiss must be positive, got %s", appCfg.BannerDismiss)
	}
	if appCfg.CSRFKey != "" && len(appCfg.CSRFKey) != 32 {
		return fmt.Errorf("csrf_key must be exactly 32 bytes, got %d", len(appCfg.CSRFKey))
	}

	if coreCfg != nil && coreCfg.Env == "prod" {
		if appCfg.CSRFKey == "" {
			return fmt.Errorf("csrf_key is required in prod")
		}
		if appCfg.SessionKey == "" || appCfg.SessionKey == defaultSessionKey {
			return fmt.Errorf("session_key must be set to a non-default value in prod")
		}
	}

	return nil
}

func validateAPIBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse api_base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api_base_url must be an absolute http(s) URL, got %q", raw)
	}
	return nil
}

// loadLocation resolves the display zone. Blank means time.Local.
func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
