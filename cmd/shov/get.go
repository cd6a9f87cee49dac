package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Fetch the value stored under a key",
	Long: `Fetch the value stored under a key.

Key names are case-sensitive.

Example:
  shov get greeting`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	client := mustClient()

	stop := startSpinner("Fetching...")
	resp, err := client.Get(cmd.Context(), args[0])
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	fmt.Println(renderValue(resp.Value))
	return nil
}
