package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/killallgit/annotator-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "annotator-api",
	Short: "Text annotation API server",
	Long: `Annotator API - a collaborative named-entity annotation service

Multiple annotators label character spans of text units through working
sessions. Every add and remove lands in an append-only audit trail, and
completed texts are persisted as training-ready snapshots.

Features:
  • Session-scoped entity stores with span validation
  • Append-only annotation ledger with per-user statistics
  • Transactional snapshot persistence with soft-deleted history
  • Bulk text import from a watched drop directory
  • JSON export for ML training pipelines`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it.
// Version and help never touch config, so they work with a broken or
// missing settings file.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
