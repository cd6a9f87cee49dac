// Package main provides the shov CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shovdev/shov-cli/internal/logging"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// jsonOutput switches every command to machine-readable output
	jsonOutput bool

	flagProject string
	flagAPIKey  string

	verbose bool
	debug   bool

	logger logging.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		// This ensures Cobra errors (like bad arguments) are visible
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shov",
	Short: "Command-line client for the Shov data platform",
	Long: `shov is the command-line client for the Shov backend platform.

Core features:
  - Key-value store and JSON document collections
  - Semantic vector search across stored data
  - File storage with streaming uploads
  - Real-time pub/sub over server-sent events
  - Serverless functions, secrets, backups, and analytics events

Credentials resolve from --project/--api-key flags, then ./shov.json,
then SHOV_PROJECT/SHOV_API_KEY, then the ~/.shov registry. Run
'shov new' to create a project and 'shov whoami' to see what is in
effect. Add --json to any command for machine-readable output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A project-local .env may carry SHOV_* variables.
		_ = godotenv.Load()
		logger = logging.Logger{Verbose: verbose, Debug: debug}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagProject, "project", "p", "", "Project name (overrides shov.json and environment)")
	rootCmd.PersistentFlags().StringVarP(&flagAPIKey, "api-key", "k", "", "API key (overrides shov.json and environment)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose progress output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug output, implies --verbose")
	rootCmd.Version = Version
}
