package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/shovdev/shov-cli/internal/api"
	"github.com/spf13/cobra"
)

func init() {
	eventsQueryCmd.Flags().StringVar(&eventsQueryName, "name", "", "Only events with this name")
	eventsQueryCmd.Flags().StringVar(&eventsQuerySince, "since", "", "Only events after this timestamp")
	eventsQueryCmd.Flags().IntVar(&eventsQueryLimit, "limit", 0, "Maximum events (0 = server default)")

	eventsCmd.AddCommand(eventsTrackCmd)
	eventsCmd.AddCommand(eventsQueryCmd)
	eventsCmd.AddCommand(eventsTailCmd)
	rootCmd.AddCommand(eventsCmd)
}

var (
	eventsQueryName  string
	eventsQuerySince string
	eventsQueryLimit int
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Track and query analytics events",
}

var eventsTrackCmd = &cobra.Command{
	Use:   "track <name> [properties]",
	Short: "Record one analytics event",
	Long: `Record one analytics event with optional JSON properties.

Example:
  shov events track signup '{"plan":"free"}'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runEventsTrack,
}

var eventsQueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query recorded events",
	Args:  cobra.NoArgs,
	RunE:  runEventsQuery,
}

var eventsTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Stream events live until interrupted",
	Args:  cobra.NoArgs,
	RunE:  runEventsTail,
}

func runEventsTrack(cmd *cobra.Command, args []string) error {
	name := args[0]
	var props json.RawMessage
	if len(args) == 2 {
		props = mustParseJSON("properties", args[1])
	}
	client := mustClient()

	stop := startSpinner("Tracking...")
	resp, err := client.TrackEvent(cmd.Context(), name, props)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	successLine("Tracked %s", color.CyanString(name))
	return nil
}

func runEventsQuery(cmd *cobra.Command, args []string) error {
	client := mustClient()

	stop := startSpinner("Querying events...")
	resp, err := client.QueryEvents(cmd.Context(), api.EventQuery{
		Name:  eventsQueryName,
		Since: eventsQuerySince,
		Limit: eventsQueryLimit,
	})
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	if len(resp.Events) == 0 {
		fmt.Println("No events.")
		return nil
	}
	for _, ev := range resp.Events {
		line := fmt.Sprintf("%s  %s", ev.Timestamp.Format("2006-01-02 15:04:05"), color.CyanString(ev.Name))
		if len(ev.Properties) > 0 {
			line += "  " + valueSnippet(ev.Properties)
		}
		fmt.Println(line)
	}
	return nil
}

func runEventsTail(cmd *cobra.Command, args []string) error {
	client := mustClient()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	stream, err := client.TailEvents(ctx)
	if err != nil {
		exitAPIError(err)
	}
	defer stream.Close()

	return pumpEvents(ctx, stream, 0)
}
