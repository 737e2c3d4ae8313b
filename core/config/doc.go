// Package config provides configuration management for the inventory manager.
//
// It uses Viper for environment variables and godotenv for an optional .env
// file. Every setting has a default declared in a `default:"..."` struct tag
// next to its `mapstructure` key, and nested keys map to upper-case
// environment variables joined by underscores (server.port -> SERVER_PORT).
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and request body limit
//   - Database: driver (sqlite or mysql), SQLite path, MySQL connection details
//   - Storage: S3/MinIO credentials and the product image bucket
//   - Log: logging level and format
//   - Inventory: default currency, page size, image upload rules
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
