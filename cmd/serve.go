package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/killallgit/annotator-api/api"
	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/internal/annotator"
	"github.com/killallgit/annotator-api/internal/database"
	"github.com/killallgit/annotator-api/internal/models"
	annotationsService "github.com/killallgit/annotator-api/internal/services/annotations"
	"github.com/killallgit/annotator-api/internal/services/importer"
	textsService "github.com/killallgit/annotator-api/internal/services/texts"
	"github.com/killallgit/annotator-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Annotator API server with the configured settings.

The server exposes the annotation endpoints, the audit trail, user
statistics, and the export feed. When the importer is enabled it also
watches a drop directory for bulk text JSON files.

Example:
  annotator-api serve
  annotator-api serve --port 9090
  annotator-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
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
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	textService := textsService.NewService(textsService.NewRepository(db.DB))
	annotationService := annotationsService.NewService(annotationsService.NewRepository(db.DB))

	server := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort))
	server.SetDependencies(&types.Dependencies{
		DB:                db,
		TextService:       textService,
		AnnotationService: annotationService,
		SessionManager:    annotator.NewManager(),
		Labels:            cfg.Labels.Types,
		HistoryLimit:      cfg.History.DefaultLimit,
	})
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	importCtx, stopImporter := context.WithCancel(context.Background())
	defer stopImporter()
	if cfg.Importer.Enabled {
		imp, err := importer.New(textService, cfg.Importer.WatchDir)
		if err != nil {
			return fmt.Errorf("failed to start importer: %w", err)
		}
		defer imp.Stop()
		go func() {
			if err := imp.Run(importCtx); err != nil {
				log.Printf("importer stopped: %v", err)
			}
		}()
		log.Printf("Importer watching %s", cfg.Importer.WatchDir)
	}

	log.Printf("Starting Annotator API server on %s:%d", serverHost, serverPort)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-stop:
		log.Println("Shutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "%v\n", err)
		log.Println("Shutting down server...")
	}

	stopImporter()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	log.Println("Server gracefully stopped")
	return nil
}
