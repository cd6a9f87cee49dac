package api

import "context"

// ListSecrets returns secret metadata, optionally scoped to the given
// functions. Values never leave the server.
func (c *Client) ListSecrets(ctx context.Context, functions []string) (*SecretListResponse, error) {
	body := map[string]any{}
	if len(functions) > 0 {
		body["functions"] = functions
	}
	var out SecretListResponse
	if err := c.post(ctx, c.projectPath("secret-list"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetSecret writes one secret, optionally scoped to functions.
func (c *Client) SetSecret(ctx context.Context, name, value string, functions []string) error {
	body := map[string]any{"name": name, "value": value}
	if len(functions) > 0 {
		body["functions"] = functions
	}
	return c.post(ctx, c.projectPath("secret-set"), body, nil)
}

// SetSecrets writes a batch of name-value pairs in one call.
func (c *Client) SetSecrets(ctx context.Context, secrets map[string]string, functions []string) (*SecretSetManyResponse, error) {
	body := map[string]any{"secrets": secrets}
	if len(functions) > 0 {
		body["functions"] = functions
	}
	var out SecretSetManyResponse
	if err := c.post(ctx, c.projectPath("secret-set-many"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSecret removes one secret.
func (c *Client) DeleteSecret(ctx context.Context, name string, functions []string) error {
	body := map[string]any{"name": name}
	if len(functions) > 0 {
		body["functions"] = functions
	}
	return c.post(ctx, c.projectPath("secret-delete"), body, nil)
}
