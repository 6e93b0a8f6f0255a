package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"insightflow-api/core/bootstrap"
	"insightflow-api/core/config"
	"insightflow-api/core/database"
	"insightflow-api/core/loader"
	"insightflow-api/core/logger"
	"insightflow-api/feature/diagnostics"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "insightflow-api/docs/swagger"
)

// @title InsightFlow API
// @version 1.0.0
// @description API documentation for InsightFlow application
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the InsightFlow API server",
	Long:  `Loads the configuration, mounts every enabled feature under the global prefix and serves until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer func() { _ = logg.Sync() }()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
			defer func() {
				if err := database.Close(db); err != nil {
					logg.Warn("Failed to close database", zap.Error(err))
				}
			}()
		}

		// 4. Register Features
		mgr := loader.NewManager()
		mgr.Register(diagnostics.NewFeature(database.NewUserRepository(db), logg))

		// 5. Serve until SIGINT/SIGTERM
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return bootstrap.Run(ctx, cfg, logg, mgr)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
