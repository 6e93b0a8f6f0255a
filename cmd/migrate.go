package cmd

import (
	"fmt"

	"insightflow-api/core/config"
	"insightflow-api/core/database"
	"insightflow-api/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long:  `Connects to the configured database and auto-migrates every model, then prints the resulting columns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer func() { _ = logg.Sync() }()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}
		defer func() { _ = database.Close(db) }()

		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}

		columns, err := database.GetTableColumns(db, "users")
		if err != nil {
			return err
		}
		for _, col := range columns {
			logg.Info("Column",
				zap.String("table", "users"),
				zap.String("field", col.Field),
				zap.String("type", col.Type),
				zap.Bool("nullable", col.Nullable),
			)
		}
		logg.Info("Migration completed", zap.Int("columns", len(columns)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
