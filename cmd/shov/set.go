package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a value under a key",
	Long: `Store a value under a key, overwriting any previous value.

The value is parsed as JSON; anything that is not valid JSON is
stored as a plain string.

Example:
  shov set greeting hello
  shov set settings '{"theme":"dark","retries":3}'`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := parseJSONValue(args[1])
	client := mustClient()

	stop := startSpinner("Saving...")
	err := client.Set(cmd.Context(), key, value)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(map[string]any{"success": true, "key": key})
	}
	successLine("Set %s", color.CyanString(key))
	return nil
}
