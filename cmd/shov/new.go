package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/shovdev/shov-cli/internal/api"
	"github.com/shovdev/shov-cli/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	newCmd.Flags().StringVar(&newEmail, "email", "", "Verify ownership by email (sends a one-time code)")
	rootCmd.AddCommand(newCmd)
}

var newEmail string

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a project and save its credentials",
	Long: `Create a project and save its credentials.

Without a name the server picks one. Without --email the project is
anonymous and the API key is issued immediately; claim it later with
'shov claim'. With --email a verification code is mailed first.

Example:
  shov new
  shov new my-app --email dev@example.com`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	// Bootstrap call: there are no credentials yet.
	client := api.New("", "")

	stop := startSpinner("Creating project...")
	resp, err := client.CreateProject(cmd.Context(), name, newEmail)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if resp.RequiresVerification {
		code, err := promptLine(fmt.Sprintf("Enter the code sent to %s", newEmail))
		if err != nil {
			exitWithError(ExitError, "reading verification code: %v", err)
		}
		stop = startSpinner("Verifying...")
		resp, err = client.VerifyNewProject(cmd.Context(), name, newEmail, code)
		stop()
		if err != nil {
			exitAPIError(err)
		}
	}

	saveProjectCredentials(resp.Project, resp.APIKey, newEmail)

	if jsonOutput {
		return outputJSON(map[string]any{
			"success": true,
			"project": resp.Project,
			"apiKey":  resp.APIKey,
		})
	}
	successLine("Created project %s", color.CyanString(resp.Project))
	fmt.Printf("  API key: %s\n", resp.APIKey)
	fmt.Println("  Saved to shov.json and the ~/.shov registry")
	if newEmail == "" {
		fmt.Println("  Anonymous project: run 'shov claim' to attach it to your email")
	}
	return nil
}

// saveProjectCredentials writes both credential stores. A failed write
// warns instead of failing; the key was already issued and printed.
func saveProjectCredentials(project, apiKey, email string) {
	local := config.LocalConfig{Project: project, APIKey: apiKey, Email: email}
	if err := config.SaveLocal(local); err != nil {
		logger.Warnf("could not write shov.json: %v", err)
	}
	if err := config.AddProject(project, apiKey, email); err != nil {
		logger.Warnf("could not update the project registry: %v", err)
	}
}
