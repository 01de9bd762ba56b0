package app

import (
	"context"
	"errors"

	"github.com/vk/taskpipego/internal/ctxlog"
	"github.com/vk/taskpipego/internal/executor"
)

// ErrPipelineFailed reports that at least one executed task failed. The
// CLI maps it to a non-zero exit code.
var ErrPipelineFailed = errors.New("pipeline run failed")

// Run executes the loaded document and reports the aggregated outcome.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.logger.Info("🚀 Starting pipeline run.", "file", a.config.FilePath, "tags", a.config.Tags)
	if !executor.New().Run(ctx, a.document, a.config.Tags) {
		return ErrPipelineFailed
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
