// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/resources"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/timeouts"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeout overrides applied from environment", zap.Int("count", n))
	}
	resources.LoadSharedTemplates()
	return nil
}
