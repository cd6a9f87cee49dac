package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/shovdev/shov-cli/internal/api"
	"github.com/spf13/cobra"
)

func init() {
	whereCmd.Flags().StringVar(&whereFilter, "filter", "", "JSON filter on document fields")
	whereCmd.Flags().IntVar(&whereLimit, "limit", 0, "Maximum items to return (0 = server default)")
	whereCmd.Flags().StringVar(&whereSort, "sort", "", "Sort order, e.g. createdAt:desc")
	rootCmd.AddCommand(whereCmd)
}

var (
	whereFilter string
	whereLimit  int
	whereSort   string
)

var whereCmd = &cobra.Command{
	Use:   "where <collection>",
	Short: "List a collection's items, optionally filtered",
	Long: `List a collection's items, optionally filtered.

The filter is a JSON object matched against document fields.

Example:
  shov where orders
  shov where orders --filter '{"status":"open"}' --limit 10 --sort createdAt:desc`,
	Args: cobra.ExactArgs(1),
	RunE: runWhere,
}

func runWhere(cmd *cobra.Command, args []string) error {
	collection := args[0]
	params := api.WhereParams{Limit: whereLimit, Sort: whereSort}
	if whereFilter != "" {
		params.Filter = mustParseJSON("--filter", whereFilter)
	}
	client := mustClient()

	stop := startSpinner("Querying...")
	resp, err := client.Where(cmd.Context(), collection, params)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	if len(resp.Items) == 0 {
		fmt.Printf("No items in %s\n", color.CyanString(collection))
		return nil
	}
	for _, item := range resp.Items {
		fmt.Printf("%s  %s\n", color.CyanString(item.ID), valueSnippet(item.Value))
	}
	fmt.Printf("\n%d item(s)\n", len(resp.Items))
	return nil
}
