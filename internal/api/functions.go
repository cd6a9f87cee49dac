package api

import (
	"context"
	"encoding/json"
)

// ListFunctions returns the project's deployed serverless functions.
func (c *Client) ListFunctions(ctx context.Context) (*FunctionListResponse, error) {
	var out FunctionListResponse
	if err := c.post(ctx, c.projectPath("function-list"), map[string]string{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// WriteFunction deploys source code under a name, creating a new
// version. Config is optional deployment metadata (routes, schedule).
func (c *Client) WriteFunction(ctx context.Context, name, code string, config json.RawMessage) (*FunctionWriteResponse, error) {
	body := map[string]any{"name": name, "code": code}
	if len(config) > 0 {
		body["config"] = config
	}
	var out FunctionWriteResponse
	if err := c.post(ctx, c.projectPath("function-write"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReadFunction fetches one function's source and config.
func (c *Client) ReadFunction(ctx context.Context, name string) (*FunctionReadResponse, error) {
	body := map[string]string{"name": name}
	var out FunctionReadResponse
	if err := c.post(ctx, c.projectPath("function-read"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFunction removes a function and its version history.
func (c *Client) DeleteFunction(ctx context.Context, name string) error {
	body := map[string]string{"name": name}
	return c.post(ctx, c.projectPath("function-delete"), body, nil)
}

// RollbackFunction redeploys an earlier version as the new head.
func (c *Client) RollbackFunction(ctx context.Context, name string, version int) (*FunctionWriteResponse, error) {
	body := map[string]any{"name": name, "version": version}
	var out FunctionWriteResponse
	if err := c.post(ctx, c.projectPath("function-rollback"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FunctionLogs fetches recent execution output for one function.
func (c *Client) FunctionLogs(ctx context.Context, name string, limit int) (*FunctionLogsResponse, error) {
	body := map[string]any{"name": name}
	if limit > 0 {
		body["limit"] = limit
	}
	var out FunctionLogsResponse
	if err := c.post(ctx, c.projectPath("function-logs"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
