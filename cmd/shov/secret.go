package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	secretListCmd.Flags().StringSliceVar(&secretFunctions, "functions", nil, "Scope to these functions")
	secretSetCmd.Flags().StringSliceVar(&secretFunctions, "functions", nil, "Scope to these functions")
	secretSetManyCmd.Flags().StringVar(&secretSetManyFile, "file", "", "YAML or JSON file of name: value pairs (required)")
	secretSetManyCmd.Flags().StringSliceVar(&secretFunctions, "functions", nil, "Scope to these functions")
	secretSetManyCmd.MarkFlagRequired("file")
	secretDeleteCmd.Flags().StringSliceVar(&secretFunctions, "functions", nil, "Scope to these functions")
	secretDeleteCmd.Flags().BoolVar(&secretDeleteYes, "yes", false, "Skip the confirmation prompt")

	secretCmd.AddCommand(secretListCmd)
	secretCmd.AddCommand(secretSetCmd)
	secretCmd.AddCommand(secretSetManyCmd)
	secretCmd.AddCommand(secretDeleteCmd)
	rootCmd.AddCommand(secretCmd)
}

var (
	secretFunctions   []string
	secretSetManyFile string
	secretDeleteYes   bool
)

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Manage secrets for serverless functions",
	Long: `Manage secrets for serverless functions.

Secrets are write-only: the API never returns their values, only
names and scopes.`,
}

var secretListCmd = &cobra.Command{
	Use:   "list",
	Short: "List secret names",
	Args:  cobra.NoArgs,
	RunE:  runSecretList,
}

var secretSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Write one secret",
	Args:  cobra.ExactArgs(2),
	RunE:  runSecretSet,
}

var secretSetManyCmd = &cobra.Command{
	Use:   "set-many",
	Short: "Write a batch of secrets from a file",
	Long: `Write a batch of secrets from a YAML or JSON file of name: value
pairs.

Example:
  shov secret set-many --file secrets.yaml --functions webhook`,
	Args: cobra.NoArgs,
	RunE: runSecretSetMany,
}

var secretDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a secret",
	Args:  cobra.ExactArgs(1),
	RunE:  runSecretDelete,
}

func runSecretList(cmd *cobra.Command, args []string) error {
	client := mustClient()

	stop := startSpinner("Listing secrets...")
	resp, err := client.ListSecrets(cmd.Context(), secretFunctions)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	if len(resp.Secrets) == 0 {
		fmt.Println("No secrets.")
		return nil
	}
	for _, s := range resp.Secrets {
		line := color.CyanString(s.Name)
		if len(s.Functions) > 0 {
			line += fmt.Sprintf("  (%d function(s))", len(s.Functions))
		}
		fmt.Println(line)
	}
	return nil
}

func runSecretSet(cmd *cobra.Command, args []string) error {
	name := args[0]
	client := mustClient()

	stop := startSpinner("Saving secret...")
	err := client.SetSecret(cmd.Context(), name, args[1], secretFunctions)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(map[string]any{"success": true, "name": name})
	}
	successLine("Set secret %s", color.CyanString(name))
	return nil
}

// loadSecretsFile parses a YAML or JSON map of name: value pairs.
// Non-string values are rejected, never stringified.
func loadSecretsFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var secrets map[string]string
	if err := yaml.Unmarshal(data, &secrets); err != nil {
		return nil, fmt.Errorf("%s must map secret names to string values: %w", path, err)
	}
	if len(secrets) == 0 {
		return nil, fmt.Errorf("%s contains no secrets", path)
	}
	return secrets, nil
}

func runSecretSetMany(cmd *cobra.Command, args []string) error {
	secrets, err := loadSecretsFile(secretSetManyFile)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	client := mustClient()

	stop := startSpinner(fmt.Sprintf("Saving %d secrets...", len(secrets)))
	resp, err := client.SetSecrets(cmd.Context(), secrets, secretFunctions)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	successLine("Set %d secret(s)", resp.Count)
	return nil
}

func runSecretDelete(cmd *cobra.Command, args []string) error {
	name := args[0]
	if !confirm(fmt.Sprintf("Delete secret %q?", name), secretDeleteYes) {
		exitWithError(ExitError, "aborted: pass --yes to delete without a prompt")
	}
	client := mustClient()

	stop := startSpinner("Deleting secret...")
	err := client.DeleteSecret(cmd.Context(), name, secretFunctions)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(map[string]any{"success": true, "deleted": name})
	}
	successLine("Deleted secret %s", color.CyanString(name))
	return nil
}
