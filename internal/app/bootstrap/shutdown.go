// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown releases pooled connections to the HRMS backend.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.API != nil {
		logger.Info("closing HRMS API client connections")
		deps.API.CloseIdleConnections()
	}
	return nil
}
