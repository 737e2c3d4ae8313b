package exchange

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"inventory-manager/core/reconcile"
	"inventory-manager/core/sheet"
	"inventory-manager/feature/inventory/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Store is the part of the inventory repository the exchange needs.
type Store interface {
	CreateBatch(ctx context.Context, items []models.Item) (int, error)
	All(ctx context.Context) ([]models.Item, error)
}

// ImportPlan is a reconciled spreadsheet converted to items, ready to insert.
type ImportPlan struct {
	Result *reconcile.Result
	// Items are the rows that converted cleanly.
	Items []models.Item
	// Errors holds reconcile errors followed by conversion errors.
	Errors []*reconcile.DataError
}

// ImportReport describes the outcome of an import.
type ImportReport struct {
	Summary       reconcile.Summary        `json:"summary"`
	DryRun        bool                     `json:"dry_run"`
	InsertedCount int                      `json:"inserted_count"`
	SkippedRows   int                      `json:"skipped_rows"`
	Errors        []*reconcile.DataError   `json:"errors"`
	Warnings      []*reconcile.FormatError `json:"warnings"`
}

// Export is a built inventory workbook.
type Export struct {
	Filename string
	Data     []byte
	Items    int
}

// Service cleans, imports and exports inventory spreadsheets.
type Service struct {
	store           Store
	defaultCurrency string
	logger          *zap.Logger
	exports         singleflight.Group
	now             func() time.Time
}

// NewService creates a new exchange service.
func NewService(store Store, defaultCurrency string, logger *zap.Logger) *Service {
	return &Service{
		store:           store,
		defaultCurrency: defaultCurrency,
		logger:          logger,
		now:             time.Now,
	}
}

// Clean reconciles a table.
func (s *Service) Clean(table *reconcile.Table) *reconcile.Result {
	result := reconcile.ReconcileTable(table)
	s.logResult(result)
	return result
}

func (s *Service) logResult(result *reconcile.Result) {
	sum := result.Summary
	s.logger.Info("Reconciled sheet",
		zap.Int("input_rows", sum.InputRows),
		zap.Int("standalone_rows", sum.StandaloneRows),
		zap.Int("variant_groups", sum.VariantGroups),
		zap.Int("collapsed_groups", sum.CollapsedGroups),
		zap.Int("skipped_groups", sum.SkippedGroups),
		zap.Int("output_rows", sum.OutputRows),
	)
	for _, e := range result.Errors {
		s.logger.Warn("Group skipped", zap.Error(e))
	}
	for _, w := range result.Warnings {
		s.logger.Warn("Price left unformatted", zap.Error(w))
	}
}

// PlanImport reconciles a table and converts the cleaned rows to items.
// Rows that cannot be stored are reported and left out.
func (s *Service) PlanImport(table *reconcile.Table) *ImportPlan {
	result := s.Clean(table)

	plan := &ImportPlan{
		Result: result,
		Items:  make([]models.Item, 0, len(result.Rows)),
		Errors: append([]*reconcile.DataError{}, result.Errors...),
	}
	for _, row := range result.Rows {
		item, err := toItem(row, s.defaultCurrency)
		if err != nil {
			plan.Errors = append(plan.Errors, err)
			continue
		}
		plan.Items = append(plan.Items, item)
	}
	return plan
}

// ApplyImport inserts the planned items in one transaction.
func (s *Service) ApplyImport(ctx context.Context, plan *ImportPlan) (int, error) {
	n, err := s.store.CreateBatch(ctx, plan.Items)
	if err != nil {
		return 0, err
	}
	s.logger.Info("Imported items", zap.Int("count", n))
	return n, nil
}

// Import plans and, unless dryRun is set, applies an import.
func (s *Service) Import(ctx context.Context, table *reconcile.Table, dryRun bool) (*ImportReport, error) {
	plan := s.PlanImport(table)
	report := &ImportReport{
		Summary:     plan.Result.Summary,
		DryRun:      dryRun,
		SkippedRows: len(plan.Result.Rows) - len(plan.Items),
		Errors:      plan.Errors,
		Warnings:    plan.Result.Warnings,
	}
	if dryRun {
		return report, nil
	}

	n, err := s.ApplyImport(ctx, plan)
	if err != nil {
		return nil, err
	}
	report.InsertedCount = n
	return report, nil
}

// Export builds a workbook of the whole inventory. Concurrent calls share
// one build.
func (s *Service) Export(ctx context.Context) (*Export, error) {
	v, err, shared := s.exports.Do("export", func() (any, error) {
		items, err := s.store.All(ctx)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := sheet.WriteXLSX(&buf, sheet.CleanedSheetName, exportHeaders, exportRecords(items)); err != nil {
			return nil, fmt.Errorf("failed to build export: %w", err)
		}
		return &Export{
			Filename: ExportFilename(s.now()),
			Data:     buf.Bytes(),
			Items:    len(items),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	export := v.(*Export)
	s.logger.Info("Exported inventory", zap.Int("items", export.Items), zap.Bool("shared", shared))
	return export, nil
}

// ExportFilename names an export taken at t.
func ExportFilename(t time.Time) string {
	return "inventory_export_" + t.Format("20060102_150405") + ".xlsx"
}
