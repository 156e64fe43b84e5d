// Package commands contains the lvalign subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvalign/costmodel"
	"github.com/katalvlaran/lvalign/internal/cli/config"
)

// getConfig returns the configuration loaded by the root command, or loads
// one when a command runs on its own.
func getConfig(ctx context.Context) (*config.Config, error) {
	if cfg := config.FromContext(ctx); cfg != nil {
		return cfg, nil
	}
	loaded, err := config.Load("", nil)
	if err != nil {
		return nil, err
	}
	return loaded.Config, nil
}

// loadModel reads the cost matrix named by cfg.Costs.
func loadModel(ctx context.Context, cfg *config.Config) (*costmodel.Model, error) {
	m, err := costmodel.Load(cfg.Costs)
	if err != nil {
		return nil, fmt.Errorf("load cost matrix: %w", err)
	}
	config.GetLogger(ctx).Debug("cost matrix loaded",
		slog.String("path", cfg.Costs),
		slog.Int("rows", len(m.RowSymbols())),
		slog.Int("cols", len(m.ColSymbols())))

	return m, nil
}
