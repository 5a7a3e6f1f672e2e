package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"admindash/internal/config"
	"admindash/internal/database/relational"
	"admindash/internal/logging"
	"admindash/internal/orders"
	"admindash/internal/output"
	"admindash/internal/table"
	"admindash/internal/uistate"
)

// app holds what every command needs: resolved config, a logger and the
// order repository.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	repo    *relational.OrderRepo
	cleanup func()
}

// loadApp resolves config (file, env, then command-line flags), starts
// logging and opens the order store, seeding it on first use.
func loadApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-file") {
		cfg = cfg.WithLogFile(logFile)
	}
	if cmd.Flags().Changed("page-size") {
		cfg = cfg.WithPageSize(pageSize)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, cleanup, err := logging.Setup(cfg.LogFile, cfg.SlogLevel())
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}

	repo, err := relational.OpenOrderRepo(cmd.Context(), cfg.DatabaseDSN, orders.Seed(), duckDBOptions(cfg.Database)...)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("open order store: %w", err)
	}
	settings, err := repo.Settings(cmd.Context())
	if err != nil {
		logger.Warn("read order store settings", "err", err)
	}
	logger.Info("order store ready",
		"dsn", cfg.DatabaseDSN,
		"page_size", cfg.PageSize,
		"threads", settings.Threads,
		"memory_limit", settings.MemoryLimit)

	return &app{cfg: cfg, logger: logger, repo: repo, cleanup: cleanup}, nil
}

func duckDBOptions(c config.DatabaseConfig) []relational.DuckDBOption {
	return []relational.DuckDBOption{
		relational.WithThreads(c.Threads),
		relational.WithMemoryLimit(c.MemoryLimitGB),
		relational.WithTimeout(c.Timeout),
	}
}

func (a *app) Close() {
	if err := a.repo.Close(); err != nil {
		a.logger.Error("close order store", "err", err)
	}
	a.cleanup()
}

func (a *app) newStore() *uistate.Store {
	return uistate.New(
		uistate.WithFlags(a.cfg.UIFlags()),
		uistate.WithLogger(a.logger),
	)
}

func (a *app) ordersView(ctx context.Context) (*table.View[orders.Order], error) {
	return output.LoadOrdersView(ctx, a.repo, a.cfg.PageSize)
}
