package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	functionWriteCmd.Flags().StringVar(&functionWriteFile, "file", "", "Path to the function source (required)")
	functionWriteCmd.Flags().StringVar(&functionWriteConfig, "config", "", "Path to a JSON config for the deployment")
	functionWriteCmd.MarkFlagRequired("file")
	functionRollbackCmd.Flags().IntVar(&functionRollbackVersion, "version", 0, "Version to roll back to (required)")
	functionRollbackCmd.MarkFlagRequired("version")
	functionLogsCmd.Flags().IntVar(&functionLogsLimit, "limit", 0, "Maximum log entries (0 = server default)")
	functionDeleteCmd.Flags().BoolVar(&functionDeleteYes, "yes", false, "Skip the confirmation prompt")

	functionCmd.AddCommand(functionListCmd)
	functionCmd.AddCommand(functionWriteCmd)
	functionCmd.AddCommand(functionReadCmd)
	functionCmd.AddCommand(functionDeleteCmd)
	functionCmd.AddCommand(functionRollbackCmd)
	functionCmd.AddCommand(functionLogsCmd)
	rootCmd.AddCommand(functionCmd)
}

var (
	functionWriteFile       string
	functionWriteConfig     string
	functionRollbackVersion int
	functionLogsLimit       int
	functionDeleteYes       bool
)

var functionCmd = &cobra.Command{
	Use:   "function",
	Short: "Deploy and manage serverless functions",
}

var functionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List deployed functions",
	Args:  cobra.NoArgs,
	RunE:  runFunctionList,
}

var functionWriteCmd = &cobra.Command{
	Use:   "write <name>",
	Short: "Deploy function source as a new version",
	Long: `Deploy function source as a new version.

Every write bumps the version; earlier versions stay available for
'shov function rollback'.

Example:
  shov function write webhook --file ./webhook.js
  shov function write cron --file ./cron.js --config ./cron.config.json`,
	Args: cobra.ExactArgs(1),
	RunE: runFunctionWrite,
}

var functionReadCmd = &cobra.Command{
	Use:   "read <name>",
	Short: "Print a function's deployed source",
	Args:  cobra.ExactArgs(1),
	RunE:  runFunctionRead,
}

var functionDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a function and its version history",
	Args:  cobra.ExactArgs(1),
	RunE:  runFunctionDelete,
}

var functionRollbackCmd = &cobra.Command{
	Use:   "rollback <name>",
	Short: "Redeploy an earlier version as the new head",
	Args:  cobra.ExactArgs(1),
	RunE:  runFunctionRollback,
}

var functionLogsCmd = &cobra.Command{
	Use:   "logs <name>",
	Short: "Show a function's recent execution logs",
	Args:  cobra.ExactArgs(1),
	RunE:  runFunctionLogs,
}

func runFunctionList(cmd *cobra.Command, args []string) error {
	client := mustClient()

	stop := startSpinner("Listing functions...")
	resp, err := client.ListFunctions(cmd.Context())
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	if len(resp.Functions) == 0 {
		fmt.Println("No functions deployed.")
		return nil
	}
	for _, fn := range resp.Functions {
		line := fmt.Sprintf("%s  v%d", color.CyanString(fn.Name), fn.Version)
		if !fn.UpdatedAt.IsZero() {
			line += "  " + fn.UpdatedAt.Format("2006-01-02 15:04")
		}
		fmt.Println(line)
	}
	return nil
}

func runFunctionWrite(cmd *cobra.Command, args []string) error {
	name := args[0]

	code, err := os.ReadFile(functionWriteFile)
	if err != nil {
		exitWithError(ExitError, "reading source: %v", err)
	}
	var cfg json.RawMessage
	if functionWriteConfig != "" {
		data, err := os.ReadFile(functionWriteConfig)
		if err != nil {
			exitWithError(ExitError, "reading config: %v", err)
		}
		if !json.Valid(data) {
			exitWithError(ExitError, "config %s is not valid JSON", functionWriteConfig)
		}
		cfg = data
	}
	client := mustClient()

	stop := startSpinner(fmt.Sprintf("Deploying %s...", name))
	resp, err := client.WriteFunction(cmd.Context(), name, string(code), cfg)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	successLine("Deployed %s as v%d", color.CyanString(name), resp.Version)
	if resp.URL != "" {
		fmt.Printf("  url: %s\n", resp.URL)
	}
	return nil
}

func runFunctionRead(cmd *cobra.Command, args []string) error {
	client := mustClient()

	stop := startSpinner("Fetching...")
	resp, err := client.ReadFunction(cmd.Context(), args[0])
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	// Bare source on stdout so it can be piped to a file.
	fmt.Print(resp.Function.Code)
	return nil
}

func runFunctionDelete(cmd *cobra.Command, args []string) error {
	name := args[0]
	if !confirm(fmt.Sprintf("Delete function %q and all its versions?", name), functionDeleteYes) {
		exitWithError(ExitError, "aborted: pass --yes to delete without a prompt")
	}
	client := mustClient()

	stop := startSpinner("Deleting...")
	err := client.DeleteFunction(cmd.Context(), name)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(map[string]any{"success": true, "deleted": name})
	}
	successLine("Deleted %s", color.CyanString(name))
	return nil
}

func runFunctionRollback(cmd *cobra.Command, args []string) error {
	name := args[0]
	client := mustClient()

	stop := startSpinner(fmt.Sprintf("Rolling back to v%d...", functionRollbackVersion))
	resp, err := client.RollbackFunction(cmd.Context(), name, functionRollbackVersion)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	successLine("Rolled back %s: v%d is now head", color.CyanString(name), resp.Version)
	return nil
}

func runFunctionLogs(cmd *cobra.Command, args []string) error {
	client := mustClient()

	stop := startSpinner("Fetching logs...")
	resp, err := client.FunctionLogs(cmd.Context(), args[0], functionLogsLimit)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	if len(resp.Logs) == 0 {
		fmt.Println("No logs.")
		return nil
	}
	for _, entry := range resp.Logs {
		level := entry.Level
		if level == "" {
			level = "info"
		}
		fmt.Printf("%s [%s] %s\n", entry.Timestamp.Format("2006-01-02 15:04:05"), level, entry.Message)
	}
	return nil
}
