package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/shovdev/shov-cli/internal/api"
)

func TestPullFunctionsWritesSources(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		switch body["name"] {
		case "echo":
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"function": map[string]any{
					"name":    "echo",
					"code":    "export default (req) => req.body",
					"version": 3,
				},
			})
		case "cron":
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"function": map[string]any{
					"name":    "cron",
					"code":    "export default () => {}",
					"config":  map[string]any{"schedule": "0 * * * *"},
					"version": 1,
				},
			})
		case "broken":
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{
				"error":   "function not found",
				"details": map[string]any{"reason": "not_found"},
			})
		}
	}))
	defer server.Close()

	client := api.New("demo-app", "k",
		api.WithBaseURL(server.URL),
		api.WithHTTPClient(server.Client()),
	)
	dir := filepath.Join(t.TempDir(), "functions")

	results := pullFunctions(context.Background(), client, dir, []api.FunctionInfo{
		{Name: "echo"},
		{Name: "broken"},
		{Name: "cron"},
	})

	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}

	// First and third succeed even though the second failed.
	if results[0].Err != "" || results[2].Err != "" {
		t.Errorf("unexpected failures: %+v", results)
	}
	if results[1].Err == "" {
		t.Error("broken function reported no error")
	}

	code, err := os.ReadFile(filepath.Join(dir, "echo.js"))
	if err != nil {
		t.Fatalf("reading pulled source: %v", err)
	}
	if string(code) != "export default (req) => req.body" {
		t.Errorf("echo.js = %q", code)
	}

	cfg, err := os.ReadFile(filepath.Join(dir, "cron.config.json"))
	if err != nil {
		t.Fatalf("reading pulled config: %v", err)
	}
	var parsed map[string]any
	if err := json.Unmarshal(cfg, &parsed); err != nil {
		t.Fatalf("cron.config.json is not JSON: %v", err)
	}
	if parsed["schedule"] != "0 * * * *" {
		t.Errorf("config = %v", parsed)
	}
}

func TestPullFunctionsIdempotent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"function": map[string]any{
				"name":    "echo",
				"code":    "v2 source",
				"version": 2,
			},
		})
	}))
	defer server.Close()

	client := api.New("demo-app", "k",
		api.WithBaseURL(server.URL),
		api.WithHTTPClient(server.Client()),
	)
	dir := t.TempDir()
	fns := []api.FunctionInfo{{Name: "echo"}}

	for i := 0; i < 2; i++ {
		results := pullFunctions(context.Background(), client, dir, fns)
		if results[0].Err != "" {
			t.Fatalf("run %d: %s", i, results[0].Err)
		}
	}

	code, err := os.ReadFile(filepath.Join(dir, "echo.js"))
	if err != nil {
		t.Fatal(err)
	}
	if string(code) != "v2 source" {
		t.Errorf("echo.js = %q after re-pull", code)
	}
}
