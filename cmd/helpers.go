package cmd

import (
	"context"
	"fmt"

	"inventory-manager/core/config"
	"inventory-manager/core/database"
	"inventory-manager/core/logger"
	"inventory-manager/core/reconcile"
	"inventory-manager/feature/inventory"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// bootstrap loads the configuration and builds the logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

// openInventory connects to the database and brings the inventory table up to date.
func openInventory(ctx context.Context, cfg *config.Config, l *zap.Logger) (*inventory.Repository, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return migrateInventory(ctx, db, l)
}

func migrateInventory(ctx context.Context, db *gorm.DB, l *zap.Logger) (*inventory.Repository, error) {
	repo := inventory.NewRepository(db)
	added, err := repo.Migrate(ctx)
	if err != nil {
		return nil, err
	}
	if len(added) > 0 {
		l.Info("Added inventory columns", zap.Strings("columns", added))
	}
	return repo, nil
}

// printSummary logs a reconciliation summary and a sample of its problems.
func printSummary(l *zap.Logger, result *reconcile.Result) {
	s := result.Summary
	l.Info("Reconciliation report",
		zap.Int("input_rows", s.InputRows),
		zap.Int("standalone_rows", s.StandaloneRows),
		zap.Int("variant_groups", s.VariantGroups),
		zap.Int("collapsed_groups", s.CollapsedGroups),
		zap.Int("skipped_groups", s.SkippedGroups),
		zap.Int("output_rows", s.OutputRows),
	)
	printErrors(l, result.Errors)
	for _, w := range result.Warnings {
		l.Warn("Price left unformatted", zap.Error(w))
	}
}

// printErrors logs at most five row errors.
func printErrors(l *zap.Logger, errs []*reconcile.DataError) {
	const maxShow = 5
	for i, e := range errs {
		if i == maxShow {
			l.Warn("Additional errors not shown", zap.Int("count", len(errs)-maxShow))
			return
		}
		l.Warn("Row error", zap.Error(e))
	}
}
