package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/killallgit/annotator-api/internal/database"
	"github.com/killallgit/annotator-api/internal/models"
	"github.com/killallgit/annotator-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Apply the database schema for the Annotator API.

Creates or updates the texts, annotations, annotation_history, and
annotation_sessions tables using GORM auto-migration. Safe to run
repeatedly; existing data is preserved.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(
		&models.TextUnit{},
		&models.Annotation{},
		&models.AnnotationHistory{},
		&models.AnnotationSession{},
	); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Database schema up to date at %s\n", cfg.Database.Path)
	return nil
}
