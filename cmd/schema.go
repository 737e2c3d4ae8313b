package cmd

import (
	"fmt"

	"inventory-manager/core/database"
	"inventory-manager/feature/inventory/models"

	"github.com/spf13/cobra"
)

// schemaCmd migrates the inventory table and prints its columns.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create or upgrade the inventory table and show its columns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if _, err := migrateInventory(cmd.Context(), db, l); err != nil {
			return err
		}

		columns, err := database.GetTableColumns(db, models.TableName)
		if err != nil {
			return err
		}
		fmt.Printf("%-20s %-12s %-5s %s\n", "COLUMN", "TYPE", "NULL", "KEY")
		for _, c := range columns {
			fmt.Printf("%-20s %-12s %-5s %s\n", c.Field, c.Type, c.Null, c.Key)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(schemaCmd)
}
