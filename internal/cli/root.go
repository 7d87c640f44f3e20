// Package cli implements coachctl, the operator CLI for the nutrition coach.
package cli

import (
	"fmt"
	"os"

	"github.com/blaisecz/nutrition-coach/internal/config"
	"github.com/blaisecz/nutrition-coach/internal/logger"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	databaseURL string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "coachctl",
	Short: "coachctl manages the nutrition coach database and previews guidance",
	Long:  "coachctl runs migrations and seeding, previews sleep analysis, next-meal guidance and fallback diet plans, and checks Langfuse connectivity.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Init(logger.Config{Level: logLevel, Prefix: "coachctl"})
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "Database DSN (defaults to DATABASE_URL)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
}

// withDB opens the configured database for the duration of fn.
func withDB(fn func(db *gorm.DB) error) error {
	cfg := config.Load()
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}

	db, err := config.NewDatabase(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	return fn(db)
}
