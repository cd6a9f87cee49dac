package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/shovdev/shov-cli/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	restoreCmd.Flags().StringVar(&restoreTo, "to", "", "Clone into a fresh project instead of restoring in place")
	restoreCmd.Flags().BoolVar(&restoreYes, "yes", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(restoreCmd)
}

var (
	restoreTo  string
	restoreYes bool
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "List the project's restore points",
	Args:  cobra.NoArgs,
	RunE:  runTimeline,
}

var restoreCmd = &cobra.Command{
	Use:   "restore <timestamp>",
	Short: "Roll the project back to a point in time",
	Long: `Roll the project back to a point in time from 'shov timeline'.

In-place restore replaces the project's current data, so it asks
first. With --to the snapshot is cloned into a fresh project instead
and the source stays untouched; the clone's credentials are saved to
the registry.

Example:
  shov restore 2026-08-20T14:00:00Z
  shov restore 2026-08-20T14:00:00Z --to my-app-staging`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func runTimeline(cmd *cobra.Command, args []string) error {
	client := mustClient()

	stop := startSpinner("Fetching timeline...")
	resp, err := client.Timeline(cmd.Context())
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	if len(resp.Backups) == 0 {
		fmt.Println("No restore points yet.")
		return nil
	}
	for _, b := range resp.Backups {
		line := b.Timestamp.Format("2006-01-02T15:04:05Z07:00")
		if b.Type != "" {
			line += "  " + b.Type
		}
		if b.Size > 0 {
			line += "  " + formatBytes(b.Size)
		}
		fmt.Println(line)
	}
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	timestamp := args[0]
	client := mustClient()

	if restoreTo == "" {
		prompt := fmt.Sprintf("Replace all data in %q with the %s snapshot?", client.Project(), timestamp)
		if !confirm(prompt, restoreYes) {
			exitWithError(ExitError, "aborted: pass --yes to restore without a prompt")
		}
	}

	stop := startSpinner("Restoring...")
	resp, err := client.Restore(cmd.Context(), timestamp, restoreTo)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	// A clone comes back with its own credentials; remember them.
	if resp.Project != "" && resp.APIKey != "" {
		if err := config.AddProject(resp.Project, resp.APIKey, ""); err != nil {
			logger.Warnf("could not update the project registry: %v", err)
		}
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	if resp.Project != "" {
		successLine("Cloned snapshot into %s", color.CyanString(resp.Project))
		fmt.Printf("  API key: %s\n", resp.APIKey)
		fmt.Printf("  Run 'shov init %s' to use it here\n", resp.Project)
		return nil
	}
	successLine("Restored %s to %s", color.CyanString(client.Project()), timestamp)
	return nil
}
