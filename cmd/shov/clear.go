package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(clearCmd)
}

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear <collection>",
	Short: "Delete every item in a collection",
	Long: `Delete every item in a collection. This cannot be undone short of
restoring a backup, so it asks first; pass --yes to skip the prompt.`,
	Args: cobra.ExactArgs(1),
	RunE: runClear,
}

func runClear(cmd *cobra.Command, args []string) error {
	collection := args[0]
	if !confirm(fmt.Sprintf("Delete everything in %q?", collection), clearYes) {
		exitWithError(ExitError, "aborted: pass --yes to clear %q without a prompt", collection)
	}
	client := mustClient()

	stop := startSpinner("Clearing...")
	resp, err := client.Clear(cmd.Context(), collection)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	successLine("Cleared %s (%d items removed)", color.CyanString(collection), resp.Count)
	return nil
}
