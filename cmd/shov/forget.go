package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(forgetCmd)
}

var forgetCmd = &cobra.Command{
	Use:   "forget <key>",
	Short: "Delete a key and its value",
	Args:  cobra.ExactArgs(1),
	RunE:  runForget,
}

func runForget(cmd *cobra.Command, args []string) error {
	key := args[0]
	client := mustClient()

	stop := startSpinner("Deleting...")
	err := client.Forget(cmd.Context(), key)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(map[string]any{"success": true, "key": key})
	}
	successLine("Forgot %s", color.CyanString(key))
	return nil
}
