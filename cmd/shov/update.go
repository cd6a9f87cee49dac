package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update <collection> <id> <json>",
	Short: "Replace one collection item by id",
	Long: `Replace one collection item by id.

The document replaces the stored value wholesale; there is no partial
merge.

Example:
  shov update orders ord_123 '{"sku":"espresso","qty":3}'`,
	Args: cobra.ExactArgs(3),
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	collection, id := args[0], args[1]
	value := mustParseJSON("document", args[2])
	client := mustClient()

	stop := startSpinner("Updating...")
	err := client.Update(cmd.Context(), collection, id, value)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(map[string]any{"success": true, "id": id})
	}
	successLine("Updated %s in %s", id, color.CyanString(collection))
	return nil
}
