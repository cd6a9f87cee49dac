package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// Set writes a key-value pair. Value is any JSON document; setting an
// existing key overwrites it.
func (c *Client) Set(ctx context.Context, key string, value json.RawMessage) error {
	body := map[string]any{"name": key, "value": value}
	return c.post(ctx, c.projectPath("set"), body, nil)
}

// Get fetches one value by key.
func (c *Client) Get(ctx context.Context, key string) (*GetResponse, error) {
	body := map[string]string{"name": key}
	var out GetResponse
	if err := c.post(ctx, c.projectPath("get"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Forget deletes a key. Deleting is idempotent on the server side but
// an unknown key still reports not_found.
func (c *Client) Forget(ctx context.Context, key string) error {
	return c.do(ctx, http.MethodDelete, c.projectPath("forget", key), nil, nil)
}
