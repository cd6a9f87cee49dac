package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Subscription declares one source of real-time events: a collection
// (optionally filtered), a single key, or a named channel.
type Subscription struct {
	Collection string          `json:"collection,omitempty"`
	Key        string          `json:"key,omitempty"`
	Channel    string          `json:"channel,omitempty"`
	Filter     json.RawMessage `json:"filter,omitempty"`
}

// CreateToken mints a short-lived token scoped to the given
// subscriptions. The token, not the API key, authenticates the
// streaming connection.
func (c *Client) CreateToken(ctx context.Context, tokenType string, subs []Subscription, expiresIn int) (*TokenResponse, error) {
	body := map[string]any{"type": tokenType}
	if len(subs) > 0 {
		body["subscriptions"] = subs
	}
	if expiresIn > 0 {
		body["expiresIn"] = expiresIn
	}
	var out TokenResponse
	if err := c.post(ctx, c.projectPath("token"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Broadcast publishes a message to a channel's subscribers.
func (c *Client) Broadcast(ctx context.Context, channel string, message json.RawMessage) (*BroadcastResponse, error) {
	body := map[string]any{"channel": channel, "message": message}
	var out BroadcastResponse
	if err := c.post(ctx, c.projectPath("broadcast"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EventKind separates the three things a stream can deliver.
type EventKind string

const (
	// EventConnected is the server's acknowledgement that the
	// subscriptions are registered.
	EventConnected EventKind = "connected"
	// EventPing is a keep-alive; carries no payload.
	EventPing EventKind = "ping"
	// EventMessage is an application payload.
	EventMessage EventKind = "message"
)

// Event is one item read off a live stream.
type Event struct {
	Kind EventKind
	Data json.RawMessage
}

// Stream is a one-directional server-sent event feed. It stays open
// until Close, server shutdown, or cancellation of the context it was
// opened with; there is no automatic reconnect.
type Stream struct {
	ctx     context.Context
	body    io.ReadCloser
	scanner *bufio.Scanner

	// partial frame carried across Next calls; comment keep-alives
	// may arrive between the fields of one frame
	name string
	data bytes.Buffer
}

// Subscribe opens the real-time stream authenticated by a previously
// minted token.
func (c *Client) Subscribe(ctx context.Context, token string) (*Stream, error) {
	endpoint := c.baseURL + c.projectPath("subscribe") + "?token=" + url.QueryEscape(token)
	return c.openStream(ctx, endpoint, false)
}

// TailEvents opens a live feed of the project's analytics events,
// authenticated by the API key.
func (c *Client) TailEvents(ctx context.Context) (*Stream, error) {
	return c.openStream(ctx, c.baseURL+c.projectPath("events-tail"), true)
}

func (c *Client) openStream(ctx context.Context, endpoint string, withAuth bool) (*Stream, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("User-Agent", userAgent)
	if withAuth && c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.streamClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, classify(resp)
	}

	sc := bufio.NewScanner(resp.Body)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	return &Stream{ctx: ctx, body: resp.Body, scanner: sc}, nil
}

// Next blocks until the next event arrives. It returns the context's
// error once the stream's context is canceled and io.EOF when the
// server closes the connection.
func (s *Stream) Next() (Event, error) {
	for s.scanner.Scan() {
		line := s.scanner.Text()
		switch {
		case line == "":
			if s.name == "" && s.data.Len() == 0 {
				continue
			}
			ev := makeEvent(s.name, s.data.Bytes())
			s.name = ""
			s.data.Reset()
			return ev, nil
		case strings.HasPrefix(line, ":"):
			// Comment lines never dispatch a frame; some deployments
			// keep connections alive with them, mid-frame included.
			if strings.Contains(line, "ping") {
				return Event{Kind: EventPing}, nil
			}
		case strings.HasPrefix(line, "event:"):
			s.name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			if s.data.Len() > 0 {
				s.data.WriteByte('\n')
			}
			s.data.WriteString(strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		}
	}
	if err := s.ctx.Err(); err != nil {
		return Event{}, err
	}
	if err := s.scanner.Err(); err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return Event{}, io.EOF
}

// Close tears down the connection. Safe to call concurrently with a
// blocked Next.
func (s *Stream) Close() error {
	return s.body.Close()
}

// makeEvent maps an SSE event name onto a kind. Streams that only use
// the default event name carry the kind inside the payload instead.
func makeEvent(name string, data []byte) Event {
	ev := Event{Kind: EventMessage}
	if len(data) > 0 {
		ev.Data = json.RawMessage(bytes.Clone(data))
	}
	if name == "" {
		var sniff struct {
			Type string `json:"type"`
		}
		if json.Unmarshal(data, &sniff) == nil {
			name = sniff.Type
		}
	}
	switch name {
	case "connected":
		ev.Kind = EventConnected
	case "ping":
		ev.Kind = EventPing
	}
	return ev
}
