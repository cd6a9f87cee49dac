package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	countCmd.Flags().StringVar(&countFilter, "filter", "", "JSON filter on document fields")
	rootCmd.AddCommand(countCmd)
}

var countFilter string

var countCmd = &cobra.Command{
	Use:   "count <collection>",
	Short: "Count a collection's items",
	Args:  cobra.ExactArgs(1),
	RunE:  runCount,
}

func runCount(cmd *cobra.Command, args []string) error {
	var filter json.RawMessage
	if countFilter != "" {
		filter = mustParseJSON("--filter", countFilter)
	}
	client := mustClient()

	stop := startSpinner("Counting...")
	resp, err := client.Count(cmd.Context(), args[0], filter)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	fmt.Println(resp.Count)
	return nil
}
