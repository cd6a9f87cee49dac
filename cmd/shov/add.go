package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(addManyCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <collection> <json>",
	Short: "Append a JSON document to a collection",
	Long: `Append a JSON document to a collection.

Collections are created on first use; documents are schema-less.

Example:
  shov add orders '{"sku":"espresso","qty":2}'`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

var addManyCmd = &cobra.Command{
	Use:   "add-many <collection> <json-array>",
	Short: "Append a batch of documents to a collection",
	Long: `Append a batch of documents to a collection in one call.

Example:
  shov add-many orders '[{"sku":"espresso"},{"sku":"latte"}]'`,
	Args: cobra.ExactArgs(2),
	RunE: runAddMany,
}

func runAdd(cmd *cobra.Command, args []string) error {
	collection := args[0]
	value := mustParseJSON("document", args[1])
	client := mustClient()

	stop := startSpinner("Adding...")
	resp, err := client.Add(cmd.Context(), collection, value)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	successLine("Added to %s", color.CyanString(collection))
	fmt.Printf("  id: %s\n", resp.ID)
	return nil
}

func runAddMany(cmd *cobra.Command, args []string) error {
	collection := args[0]

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(args[1]), &items); err != nil {
		exitWithError(ExitError, "documents must be a JSON array: %v", err)
	}
	if len(items) == 0 {
		exitWithError(ExitError, "the document array is empty")
	}
	client := mustClient()

	stop := startSpinner(fmt.Sprintf("Adding %d documents...", len(items)))
	resp, err := client.AddMany(cmd.Context(), collection, items)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	successLine("Added %d documents to %s", len(resp.IDs), color.CyanString(collection))
	return nil
}
