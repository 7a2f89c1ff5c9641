package main

import (
	"pet-api/internal/config"
	"pet-api/internal/platform/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "pet-api",
	Short: "Pet API - CRUD de mascotas y estadísticas de tipos",
	Long: `Pet API expone /pets (list, get, create, update, delete) sobre SQLite, Postgres o MySQL
y /get-types con estadísticas aleatorias. Sin subcomando arranca el servidor HTTP.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"Config file (yaml, json o toml). Default: ./config.* si existe")
}

// loadRuntime carga config y arma el logger; lo comparten serve y migrate.
func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		App:    cfg.App.Name,
	})
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
