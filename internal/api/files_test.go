package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

func TestUploadStreamsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("hello world"), 0o644); err != nil {
		t.Fatal(err)
	}

	var (
		gotName   string
		gotLength int64
		gotBody   []byte
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/upload/demo-app" {
			t.Errorf("path = %s", r.URL.Path)
		}
		gotName = r.Header.Get("X-File-Name")
		gotLength = r.ContentLength
		gotBody, _ = io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(map[string]any{
			"success":  true,
			"fileId":   "f_1",
			"fileName": "notes.txt",
		})
	})

	resp, err := c.Upload(context.Background(), path)
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if gotName != "notes.txt" {
		t.Errorf("X-File-Name = %q, want notes.txt", gotName)
	}
	if gotLength != int64(len("hello world")) {
		t.Errorf("Content-Length = %d, want %d", gotLength, len("hello world"))
	}
	if string(gotBody) != "hello world" {
		t.Errorf("body = %q", gotBody)
	}
	if resp.FileID != "f_1" {
		t.Errorf("FileID = %q", resp.FileID)
	}
}

func TestUploadZeroByteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	var gotLength int64 = -1
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotLength = r.ContentLength
		json.NewEncoder(w).Encode(map[string]any{"success": true, "fileId": "f_0"})
	})

	if _, err := c.Upload(context.Background(), path); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if gotLength != 0 {
		t.Errorf("Content-Length = %d, want 0", gotLength)
	}
}

func TestUploadMissingFile(t *testing.T) {
	requests := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	_, err := c.Upload(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Fatal("Upload() expected error for missing file")
	}
	if requests != 0 {
		t.Errorf("server saw %d requests, want 0", requests)
	}
}
