package main

import (
	"pet-api/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica las migraciones pendientes y sale",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.Store.Driver == "memory" {
		return &config.ConfigError{Field: "store.driver", Message: "memory store has no migrations"}
	}

	db, _, err := openSQL(cmd.Context(), cfg.Store, log, true)
	if err != nil {
		log.Error("migrate failed", zap.Error(err))
		return err
	}
	return db.Close()
}
