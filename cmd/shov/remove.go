package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <collection> <id>",
	Short: "Delete one collection item by id",
	Args:  cobra.ExactArgs(2),
	RunE:  runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	collection, id := args[0], args[1]
	client := mustClient()

	stop := startSpinner("Removing...")
	err := client.Remove(cmd.Context(), collection, id)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(map[string]any{"success": true, "id": id})
	}
	successLine("Removed %s from %s", id, color.CyanString(collection))
	return nil
}
