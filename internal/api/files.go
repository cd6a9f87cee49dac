package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

// Upload streams a local file to project storage. The body is the raw
// file content, never buffered in memory, with the size declared up
// front and the filename carried in a header. Zero-byte files are
// legal uploads.
func (c *Client) Upload(ctx context.Context, path string) (*UploadResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.projectPath("upload"), f)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if info.Size() == 0 {
		// A *os.File body with no ContentLength would be sent
		// chunked; an explicit empty body keeps the length at 0.
		req.Body = http.NoBody
	}
	req.ContentLength = info.Size()
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("X-File-Name", filepath.Base(path))
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classify(resp)
	}
	var out UploadResponse
	if err := decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadURL issues a pre-signed URL so a browser or job can upload
// directly to storage without holding the API key.
func (c *Client) UploadURL(ctx context.Context, fileName, contentType string) (*UploadURLResponse, error) {
	body := map[string]string{"fileName": fileName}
	if contentType != "" {
		body["contentType"] = contentType
	}
	var out UploadURLResponse
	if err := c.post(ctx, c.projectPath("upload-url"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListFiles returns the project's stored files.
func (c *Client) ListFiles(ctx context.Context) (*FileListResponse, error) {
	var out FileListResponse
	if err := c.post(ctx, c.projectPath("file-list"), map[string]string{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFile looks up one file's metadata by id or name.
func (c *Client) GetFile(ctx context.Context, idOrName string) (*FileResponse, error) {
	body := map[string]string{"name": idOrName}
	var out FileResponse
	if err := c.post(ctx, c.projectPath("file-get"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFile removes one stored file by id or name.
func (c *Client) DeleteFile(ctx context.Context, idOrName string) error {
	body := map[string]string{"name": idOrName}
	return c.post(ctx, c.projectPath("file-delete"), body, nil)
}
