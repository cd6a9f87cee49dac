package main

import (
	"encoding/json"
	"fmt"

	"github.com/shovdev/shov-cli/internal/api"
	"github.com/spf13/cobra"
)

func init() {
	tokenNewCmd.Flags().StringVar(&tokenSubscriptions, "subscriptions", "", "JSON array of {collection|key|channel, filter?} scopes")
	tokenNewCmd.Flags().IntVar(&tokenExpiresIn, "expires-in", 0, "Token lifetime in seconds (0 = server default)")
	tokenCmd.AddCommand(tokenNewCmd)
	rootCmd.AddCommand(tokenCmd)
}

var (
	tokenSubscriptions string
	tokenExpiresIn     int
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint scoped streaming tokens",
}

var tokenNewCmd = &cobra.Command{
	Use:   "new <type>",
	Short: "Mint a short-lived token for streaming connections",
	Long: `Mint a short-lived token for streaming connections.

The token is scoped to the subscriptions given at mint time and can
be handed to browsers; it cannot do anything else with the project.

Example:
  shov token new subscribe --subscriptions '[{"channel":"lobby"}]' --expires-in 300`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenNew,
}

func runTokenNew(cmd *cobra.Command, args []string) error {
	var subs []api.Subscription
	if tokenSubscriptions != "" {
		if err := json.Unmarshal([]byte(tokenSubscriptions), &subs); err != nil {
			exitWithError(ExitError, "--subscriptions must be a JSON array: %v", err)
		}
	}
	client := mustClient()

	stop := startSpinner("Minting token...")
	resp, err := client.CreateToken(cmd.Context(), args[0], subs, tokenExpiresIn)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	// The bare token on stdout keeps $(shov token new ...) usable.
	fmt.Println(resp.Token)
	if resp.ExpiresAt != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "expires: %s\n", resp.ExpiresAt)
	}
	return nil
}
