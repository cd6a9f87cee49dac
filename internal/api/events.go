package api

import (
	"context"
	"encoding/json"
)

// TrackEvent records one analytics event with optional properties.
func (c *Client) TrackEvent(ctx context.Context, name string, properties json.RawMessage) (*TrackEventResponse, error) {
	body := map[string]any{"name": name}
	if len(properties) > 0 {
		body["properties"] = properties
	}
	var out TrackEventResponse
	if err := c.post(ctx, c.projectPath("events"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EventQuery narrows an analytics query. Zero values fall back to the
// server defaults.
type EventQuery struct {
	Name  string
	Since string
	Limit int
}

// QueryEvents fetches recorded events, newest first.
func (c *Client) QueryEvents(ctx context.Context, q EventQuery) (*QueryEventsResponse, error) {
	body := map[string]any{}
	if q.Name != "" {
		body["name"] = q.Name
	}
	if q.Since != "" {
		body["since"] = q.Since
	}
	if q.Limit > 0 {
		body["limit"] = q.Limit
	}
	var out QueryEventsResponse
	if err := c.post(ctx, c.projectPath("events")+"/query", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
