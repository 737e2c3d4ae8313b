package cmd

import (
	"fmt"
	"os"

	"inventory-manager/feature/exchange"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportOutput string

// exportCmd writes the whole inventory to a workbook.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the inventory to an XLSX workbook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		repo, err := openInventory(cmd.Context(), cfg, l)
		if err != nil {
			return err
		}

		export, err := exchange.NewService(repo, cfg.Inventory.DefaultCurrency, l).Export(cmd.Context())
		if err != nil {
			return err
		}

		output := exportOutput
		if output == "" {
			output = export.Filename
		}
		if err := os.WriteFile(output, export.Data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}
		l.Info("Inventory exported", zap.String("output", output), zap.Int("items", export.Items))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default inventory_export_<timestamp>.xlsx)")
	RootCmd.AddCommand(exportCmd)
}
