package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/shovdev/shov-cli/internal/api"
	"github.com/shovdev/shov-cli/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(claimCmd)
}

var claimCmd = &cobra.Command{
	Use:   "claim <project> <email>",
	Short: "Attach an anonymous project to your email",
	Long: `Attach an anonymous project to your email.

A one-time code is mailed to the address; entering it replaces the
project's anonymous API key with an owned one. The new key is saved
to the registry, and to shov.json when it points at this project.

Example:
  shov claim quiet-meadow-1234 dev@example.com`,
	Args: cobra.ExactArgs(2),
	RunE: runClaim,
}

func runClaim(cmd *cobra.Command, args []string) error {
	project, email := args[0], args[1]

	// The claim must be signed with the named project's current key,
	// which is not necessarily this directory's project.
	key := flagAPIKey
	if key == "" {
		if local := config.LoadLocal(); local.Project == project && local.APIKey != "" {
			key = local.APIKey
		} else if rec, ok := config.ListProjects()[project]; ok && rec.APIKey != "" {
			key = rec.APIKey
		}
	}
	if key == "" {
		exitWithError(ExitError, "no API key known for %q: pass --api-key or run 'shov init %s --key <apiKey>' first", project, project)
	}
	client := api.New(project, key)

	stop := startSpinner("Requesting verification code...")
	err := client.InitiateClaim(cmd.Context(), email)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	code, err := promptLine(fmt.Sprintf("Enter the code sent to %s", email))
	if err != nil {
		exitWithError(ExitError, "reading verification code: %v", err)
	}

	stop = startSpinner("Claiming project...")
	resp, err := client.VerifyClaim(cmd.Context(), email, code)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if err := config.AddProject(project, resp.APIKey, email); err != nil {
		logger.Warnf("could not update the project registry: %v", err)
	}
	if local := config.LoadLocal(); local.Project == project {
		local.APIKey = resp.APIKey
		local.Email = email
		if err := config.SaveLocal(local); err != nil {
			logger.Warnf("could not update shov.json: %v", err)
		}
	}

	if jsonOutput {
		return outputJSON(map[string]any{
			"success": true,
			"project": project,
			"apiKey":  resp.APIKey,
		})
	}
	successLine("Claimed %s for %s", color.CyanString(project), email)
	fmt.Printf("  New API key: %s\n", resp.APIKey)
	fmt.Println("  The old anonymous key no longer works")
	return nil
}
