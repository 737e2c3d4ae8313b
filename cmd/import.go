package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"inventory-manager/core/sheet"
	"inventory-manager/feature/exchange"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dryRunImport bool
	yesConfirm   bool
)

// importCmd reconciles a spreadsheet and inserts its rows into the inventory.
var importCmd = &cobra.Command{
	Use:   "import <input>",
	Short: "Clean a spreadsheet and insert its rows into the inventory",
	Long: `Clean a spreadsheet the same way as 'clean', then insert the cleaned rows.

Rows whose quantity is not a whole number of at least 0, or whose price is not
a non-negative number, are reported and skipped. Insertion is all or nothing.

Examples:
  # Report only
  import export.csv --dry-run

  # Insert with interactive confirmation
  import export.csv

  # Insert without confirmation
  import export.csv --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&dryRunImport, "dry-run", false, "Report without inserting")
	importCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm the insert (non-interactive)")
	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	// Step 1: Read
	table, err := sheet.ReadFile(args[0])
	if err != nil {
		return err
	}

	repo, err := openInventory(ctx, cfg, l)
	if err != nil {
		return err
	}
	svc := exchange.NewService(repo, cfg.Inventory.DefaultCurrency, l)

	// Step 2: Plan
	plan := svc.PlanImport(table)
	printSummary(l, plan.Result)
	if extra := plan.Errors[len(plan.Result.Errors):]; len(extra) > 0 {
		l.Warn("Rows that cannot be stored", zap.Int("count", len(extra)))
		printErrors(l, extra)
	}
	l.Info("Import plan", zap.Int("items", len(plan.Items)))

	if len(plan.Items) == 0 {
		l.Info("Nothing to import.")
		return nil
	}
	if dryRunImport {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	// Step 3: Apply
	if !confirmImport(len(plan.Items)) {
		l.Warn("Import cancelled by user. No changes were made.")
		return nil
	}
	n, err := svc.ApplyImport(ctx, plan)
	if err != nil {
		return err
	}
	l.Info("Successfully imported items", zap.Int("count", n))
	return nil
}

// confirmImport prompts the user for confirmation or uses --yes flag.
func confirmImport(count int) bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\nType 'yes' to insert %d items: ", count)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
