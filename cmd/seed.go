package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/killallgit/annotator-api/internal/database"
	"github.com/killallgit/annotator-api/internal/models"
	"github.com/killallgit/annotator-api/internal/services/importer"
	textsService "github.com/killallgit/annotator-api/internal/services/texts"
	"github.com/killallgit/annotator-api/pkg/config"
)

// sampleTexts are demo units for trying out the annotation flow.
var sampleTexts = []models.TextUnit{
	{
		TextID:   "sample_001",
		Content:  "Tim Cook is the CEO of Apple Inc. in Cupertino, California.",
		Source:   "seed",
		Priority: 5,
	},
	{
		TextID:   "sample_002",
		Content:  "Barack Obama was born in Hawaii and served as President of the United States.",
		Source:   "seed",
		Priority: 4,
	},
	{
		TextID:   "sample_003",
		Content:  "Google announced a new research lab in Zurich, Switzerland last week.",
		Source:   "seed",
		Priority: 3,
	},
	{
		TextID:   "sample_004",
		Content:  "The Louvre in Paris exhibited works on loan from the British Museum.",
		Source:   "seed",
		Priority: 2,
	},
}

// seedFile, when set, imports a JSON drop file instead of the samples.
var seedFile string

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample texts",
	Long: `Load texts into the annotation queue.

Runs the schema migration first, then inserts the built-in sample units
as pending. Pass --file to import a JSON drop file instead; the file is
consumed on success, exactly as the watched drop directory does it.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "JSON drop file to import instead of the built-in samples (consumed on success)")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
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

	service := textsService.NewService(textsService.NewRepository(db.DB))

	if seedFile != "" {
		imp, err := importer.New(service, cfg.Importer.WatchDir)
		if err != nil {
			return fmt.Errorf("importer setup failed: %w", err)
		}
		defer imp.Stop()

		created, err := imp.ImportFile(cmd.Context(), seedFile)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d text(s) from %s into %s\n", created, seedFile, cfg.Database.Path)
		return nil
	}

	units := make([]models.TextUnit, len(sampleTexts))
	copy(units, sampleTexts)

	created, err := service.BulkUpload(context.Background(), units)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d sample text(s) into %s\n", created, cfg.Database.Path)
	return nil
}
