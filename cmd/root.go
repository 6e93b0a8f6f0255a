package cmd

import (
	"fmt"
	"os"

	"insightflow-api/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "insightflow",
	Short: "InsightFlow API",
	Long: `InsightFlow API is the backend of the InsightFlow application.
It serves the versioned HTTP API and, outside production, its OpenAPI documentation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Any failure is logged and ends the process with status 1.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding at debug level gives readable ISO8601 timestamps for CLI output
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
