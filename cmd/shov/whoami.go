package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/shovdev/shov-cli/internal/logging"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show which project and credentials are in effect",
	Long: `Show which project and credentials are in effect.

Runs only the resolution chain (flags, shov.json, environment,
registry); nothing touches the network and the key is never printed
in full.`,
	Args: cobra.NoArgs,
	RunE: runWhoami,
}

func runWhoami(cmd *cobra.Command, args []string) error {
	creds := mustResolveCredentials()

	if jsonOutput {
		return outputJSON(struct {
			Project string `json:"project"`
			Source  string `json:"source"`
			APIKey  string `json:"apiKey"`
		}{creds.Project, string(creds.Source), logging.MaskKey(creds.APIKey)})
	}

	fmt.Printf("Project:  %s\n", color.CyanString(creds.Project))
	fmt.Printf("Source:   %s\n", creds.Source)
	fmt.Printf("API key:  %s\n", logging.MaskKey(creds.APIKey))
	return nil
}
