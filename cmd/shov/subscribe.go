package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/shovdev/shov-cli/internal/api"
	"github.com/spf13/cobra"
)

func init() {
	subscribeCmd.Flags().StringArrayVar(&subCollections, "collection", nil, "Subscribe to a collection's changes (repeatable)")
	subscribeCmd.Flags().StringArrayVar(&subKeys, "key", nil, "Subscribe to a key's changes (repeatable)")
	subscribeCmd.Flags().StringArrayVar(&subChannels, "channel", nil, "Subscribe to a broadcast channel (repeatable)")
	subscribeCmd.Flags().StringVar(&subFilter, "filter", "", "JSON filter, valid with exactly one --collection")
	rootCmd.AddCommand(subscribeCmd)
}

var (
	subCollections []string
	subKeys        []string
	subChannels    []string
	subFilter      string
)

var subscribeCmd = &cobra.Command{
	Use:   "subscribe",
	Short: "Stream real-time events until interrupted",
	Long: `Stream real-time events until interrupted.

Builds the subscription list from the flags, mints a scoped token,
and holds one server-sent-events connection open. Ctrl-C closes it
cleanly; if the server drops the connection the command exits
non-zero rather than silently reconnecting.

With --json each event prints as one JSON object per line.

Example:
  shov subscribe --collection orders --filter '{"status":"open"}'
  shov subscribe --channel lobby --key settings`,
	Args: cobra.NoArgs,
	RunE: runSubscribe,
}

// buildSubscriptions assembles the subscription list from the flag
// values. A filter needs exactly one collection to attach to.
func buildSubscriptions(collections, keys, channels []string, filter string) ([]api.Subscription, error) {
	if filter != "" && len(collections) != 1 {
		return nil, fmt.Errorf("--filter requires exactly one --collection")
	}
	var subs []api.Subscription
	for _, c := range collections {
		sub := api.Subscription{Collection: c}
		if filter != "" {
			sub.Filter = []byte(filter)
		}
		subs = append(subs, sub)
	}
	for _, k := range keys {
		subs = append(subs, api.Subscription{Key: k})
	}
	for _, ch := range channels {
		subs = append(subs, api.Subscription{Channel: ch})
	}
	if len(subs) == 0 {
		return nil, fmt.Errorf("at least one --collection, --key, or --channel is required")
	}
	return subs, nil
}

func runSubscribe(cmd *cobra.Command, args []string) error {
	if subFilter != "" {
		mustParseJSON("--filter", subFilter)
	}
	subs, err := buildSubscriptions(subCollections, subKeys, subChannels, subFilter)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	client := mustClient()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	tok, err := client.CreateToken(ctx, "subscribe", subs, 0)
	if err != nil {
		exitAPIError(err)
	}
	stream, err := client.Subscribe(ctx, tok.Token)
	if err != nil {
		exitAPIError(err)
	}
	defer stream.Close()

	return pumpEvents(ctx, stream, len(subs))
}

// pumpEvents renders stream events until the context is canceled or
// the connection drops. Shared with 'events tail'.
func pumpEvents(ctx context.Context, stream *api.Stream, subscriptions int) error {
	for {
		ev, err := stream.Next()
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				if !jsonOutput {
					fmt.Fprintln(os.Stderr, "Disconnected.")
				}
				return nil
			}
			if errors.Is(err, io.EOF) {
				exitWithError(ExitError, "the server closed the stream")
			}
			exitAPIError(err)
		}

		switch ev.Kind {
		case api.EventConnected:
			if jsonOutput {
				outputStreamEvent(ev)
			} else if subscriptions > 0 {
				successLine("Connected (%d subscription(s)), waiting for events...", subscriptions)
			} else {
				successLine("Connected, waiting for events...")
			}
		case api.EventPing:
			logger.Debugf("ping")
		case api.EventMessage:
			if jsonOutput {
				outputStreamEvent(ev)
			} else {
				fmt.Printf("%s %s\n", color.HiBlackString(time.Now().Format("15:04:05")), renderValue(ev.Data))
			}
		}
	}
}

// outputStreamEvent prints one event as a single NDJSON line.
func outputStreamEvent(ev api.Event) {
	blob := map[string]any{"kind": string(ev.Kind)}
	if len(ev.Data) > 0 {
		blob["data"] = ev.Data
	}
	data, err := json.Marshal(blob)
	if err != nil {
		return
	}
	fmt.Println(string(data))
}
