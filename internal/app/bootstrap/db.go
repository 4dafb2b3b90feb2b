// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/hrmslite/internal/app/apiclient"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the HRMS backend client. No connection is opened here;
// the backend is contacted per request, and /health reports reachability.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	api, err := apiclient.New(appCfg.APIBaseURL, nil, logger)
	if err != nil {
		return DBDeps{}, fmt.Errorf("build api client: %w", err)
	}
	logger.Info("hrms api client ready", zap.String("base_url", api.BaseURL.String()))
	return DBDeps{API: api}, nil
}

// EnsureSchema is a no-op: the backend owns its schema.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
