// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/hrmslite/internal/app/resources"
	"github.com/dalemusser/hrmslite/internal/app/system/timeouts"
	"github.com/dalemusser/hrmslite/internal/app/system/viewdata"
	"github.com/dalemusser/hrmslite/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the backend
// client is built but before the HTTP handler is. It loads shared
// templates and applies the process-wide settings that handlers read.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	if n := timeouts.ConfigureFromEnv(); n > 0 {
		cfg := timeouts.Current()
		logger.Info("timeouts overridden from env",
			zap.Int("count", n),
			zap.Duration("ping", cfg.Ping),
			zap.Duration("short", cfg.Short),
			zap.Duration("medium", cfg.Medium),
			zap.Duration("long", cfg.Long))
	}

	loc, err := loadLocation(appCfg.DisplayTimezone)
	if err != nil {
		logger.Error("display timezone load failed", zap.String("tz", appCfg.DisplayTimezone), zap.Error(err))
		return err
	}
	models.SetDisplayLocation(loc)

	viewdata.Init(viewdata.DefaultSiteName, appCfg.BannerDismiss)

	logger.Info("startup complete",
		zap.String("display_timezone", loc.String()),
		zap.Int("fanout_concurrency", appCfg.FanoutConcurrency),
		zap.Duration("banner_dismiss", appCfg.BannerDismiss))
	return nil
}
