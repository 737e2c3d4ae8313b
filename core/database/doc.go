// Package database handles database connections and schema inspection.
//
// It wraps GORM and opens either a SQLite file (the default, matching a
// single-machine inventory) or a MySQL server, depending on Config.Driver.
//
// # Connect
//
// Connect builds the dialector for the configured driver, applies connection
// pool settings and verifies the connection with a ping bounded by
// TimeoutSeconds.
//
// # Schema Inspection
//
// GetTableColumns reads a table's columns (PRAGMA table_info on SQLite,
// SHOW COLUMNS on MySQL). ColumnSet and AddedColumns let migrations report
// which columns an additive migration created.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "inventory")
package database
