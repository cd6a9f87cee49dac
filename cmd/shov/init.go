package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/shovdev/shov-cli/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	initCmd.Flags().StringVar(&initKey, "key", "", "API key for the project")
	rootCmd.AddCommand(initCmd)
}

var initKey string

var initCmd = &cobra.Command{
	Use:   "init <project>",
	Short: "Point this directory at an existing project",
	Long: `Point this directory at an existing project by writing shov.json.

With --key the key is used directly and remembered in the ~/.shov
registry. Without it the key is looked up in the registry, or prompted
for when the project is unknown.

Example:
  shov init my-app --key shov_live_abc123
  shov init my-app`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	project := args[0]
	key := initKey
	email := ""

	if key == "" {
		if rec, ok := config.ListProjects()[project]; ok && rec.APIKey != "" {
			key = rec.APIKey
			email = rec.Email
			logger.Debugf("found %s in the registry", project)
		} else if !jsonOutput {
			// Machine callers must pass --key; humans get a prompt.
			key, _ = promptSecret(fmt.Sprintf("API key for %s", project))
		}
		if key == "" {
			exitWithError(ExitError, "no API key known for %q: pass --key or add it to the registry", project)
		}
	}

	if err := config.AddProject(project, key, email); err != nil {
		logger.Warnf("could not update the project registry: %v", err)
	}
	local := config.LocalConfig{Project: project, APIKey: key, Email: email}
	if err := config.SaveLocal(local); err != nil {
		exitWithError(ExitError, "writing shov.json: %v", err)
	}

	if jsonOutput {
		return outputJSON(map[string]any{"success": true, "project": project})
	}
	successLine("This directory now uses project %s", color.CyanString(project))
	return nil
}
