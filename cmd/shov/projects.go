package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/shovdev/shov-cli/internal/config"
	"github.com/shovdev/shov-cli/internal/logging"
	"github.com/spf13/cobra"
)

func init() {
	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsRemoveCmd)
	rootCmd.AddCommand(projectsCmd)
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage the ~/.shov project registry",
	Long: `Manage the ~/.shov project registry.

The registry remembers every project this machine has created or
initialized, so 'shov init <name>' and 'shov --project <name>' work
without re-entering keys.`,
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered projects",
	Args:  cobra.NoArgs,
	RunE:  runProjectsList,
}

var projectsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a project from the registry",
	Long: `Remove a project from the registry.

Only the local record is deleted; the project itself and its data
stay untouched on the server.`,
	Args: cobra.ExactArgs(1),
	RunE: runProjectsRemove,
}

// registryEntry is the JSON listing shape; keys are masked.
type registryEntry struct {
	Name      string `json:"name"`
	APIKey    string `json:"apiKey"`
	Email     string `json:"email,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func runProjectsList(cmd *cobra.Command, args []string) error {
	projects := config.ListProjects()

	names := make([]string, 0, len(projects))
	for name := range projects {
		names = append(names, name)
	}
	sort.Strings(names)

	if jsonOutput {
		entries := make([]registryEntry, 0, len(names))
		for _, name := range names {
			rec := projects[name]
			entry := registryEntry{
				Name:   name,
				APIKey: logging.MaskKey(rec.APIKey),
				Email:  rec.Email,
			}
			if !rec.CreatedAt.IsZero() {
				entry.CreatedAt = rec.CreatedAt.Format("2006-01-02")
			}
			entries = append(entries, entry)
		}
		return outputJSON(map[string]any{"projects": entries})
	}

	if len(names) == 0 {
		fmt.Println("No projects registered. Run 'shov new' to create one.")
		return nil
	}
	for _, name := range names {
		rec := projects[name]
		line := fmt.Sprintf("%s  %s", color.CyanString(name), logging.MaskKey(rec.APIKey))
		if rec.Email != "" {
			line += "  " + rec.Email
		}
		if !rec.CreatedAt.IsZero() {
			line += "  " + rec.CreatedAt.Format("2006-01-02")
		}
		fmt.Println(line)
	}
	return nil
}

func runProjectsRemove(cmd *cobra.Command, args []string) error {
	name := args[0]
	removed, err := config.RemoveProject(name)
	if err != nil {
		exitWithError(ExitError, "updating registry: %v", err)
	}
	if !removed {
		exitWithError(ExitError, "project %q is not in the registry", name)
	}

	if jsonOutput {
		return outputJSON(map[string]any{"success": true, "removed": name})
	}
	successLine("Removed %s from the registry", color.CyanString(name))
	return nil
}
