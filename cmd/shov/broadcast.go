package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(broadcastCmd)
}

var broadcastCmd = &cobra.Command{
	Use:   "broadcast <channel> <message>",
	Short: "Publish a message to a channel",
	Long: `Publish a message to a channel's live subscribers.

The message is parsed as JSON; plain text is sent as a string.

Example:
  shov broadcast lobby '{"user":"ana","text":"hi"}'`,
	Args: cobra.ExactArgs(2),
	RunE: runBroadcast,
}

func runBroadcast(cmd *cobra.Command, args []string) error {
	channel := args[0]
	message := parseJSONValue(args[1])
	client := mustClient()

	stop := startSpinner("Broadcasting...")
	resp, err := client.Broadcast(cmd.Context(), channel, message)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	successLine("Broadcast to %s", color.CyanString(channel))
	return nil
}
