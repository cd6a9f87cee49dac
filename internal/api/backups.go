package api

import (
	"context"
	"net/http"
)

// Timeline lists the restore points available to the authenticated
// project. Unlike most endpoints the project rides on the key alone.
func (c *Client) Timeline(ctx context.Context) (*TimelineResponse, error) {
	var out TimelineResponse
	if err := c.do(ctx, http.MethodGet, "/api/backups/timeline", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Restore rolls the project's data back to the given point in time.
// A non-empty targetProject clones the snapshot into a fresh project
// instead, leaving the source untouched; the response then carries the
// clone's credentials.
func (c *Client) Restore(ctx context.Context, timestamp, targetProject string) (*RestoreResponse, error) {
	body := map[string]string{"timestamp": timestamp}
	if targetProject != "" {
		body["newProjectName"] = targetProject
	}
	var out RestoreResponse
	if err := c.post(ctx, "/api/backups/restore", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
