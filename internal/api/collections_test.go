package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestValidateOperations(t *testing.T) {
	many := make([]Operation, MaxBatchOperations+1)
	for i := range many {
		many[i] = Operation{Type: "set", Name: "k", Value: json.RawMessage(`1`)}
	}

	tests := []struct {
		name    string
		ops     []Operation
		wantErr string
	}{
		{
			name:    "empty",
			ops:     nil,
			wantErr: "at least one",
		},
		{
			name:    "over the cap",
			ops:     many,
			wantErr: "at most 50",
		},
		{
			name: "unknown type",
			ops: []Operation{
				{Type: "set", Name: "a", Value: json.RawMessage(`1`)},
				{Type: "upsert", Collection: "orders"},
			},
			wantErr: `operation 1: unknown type "upsert"`,
		},
		{
			name: "all known types",
			ops: []Operation{
				{Type: "set", Name: "a", Value: json.RawMessage(`1`)},
				{Type: "get", Name: "a"},
				{Type: "add", Collection: "orders", Value: json.RawMessage(`{}`)},
				{Type: "update", Collection: "orders", ID: "o1", Value: json.RawMessage(`{}`)},
				{Type: "remove", Collection: "orders", ID: "o1"},
				{Type: "forget", Name: "a"},
				{Type: "clear", Collection: "orders"},
			},
		},
		{
			name: "exactly at the cap",
			ops:  many[:MaxBatchOperations],
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOperations(tt.ops)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateOperations() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateOperations() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestBatchRejectsBeforeNetwork(t *testing.T) {
	requests := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	oversized := make([]Operation, MaxBatchOperations+1)
	for i := range oversized {
		oversized[i] = Operation{Type: "get", Name: "k"}
	}
	if _, err := c.Batch(context.Background(), oversized); err == nil {
		t.Fatal("Batch() expected size error")
	}
	if _, err := c.Batch(context.Background(), nil); err == nil {
		t.Fatal("Batch() expected empty error")
	}
	if requests != 0 {
		t.Errorf("server saw %d requests, want 0", requests)
	}
}

func TestBatchPartialFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/batch/demo-app" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success":       true,
			"transactionId": "txn_9",
			"results": []map[string]any{
				{"success": true, "type": "set"},
				{"success": false, "type": "update", "error": "item not found"},
			},
		})
	})

	resp, err := c.Batch(context.Background(), []Operation{
		{Type: "set", Name: "a", Value: json.RawMessage(`1`)},
		{Type: "update", Collection: "orders", ID: "nope", Value: json.RawMessage(`{}`)},
	})
	if err != nil {
		t.Fatalf("Batch() error = %v", err)
	}
	if !resp.Success {
		t.Error("Success = false, want true at the envelope level")
	}
	if len(resp.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(resp.Results))
	}
	if resp.Results[0].Success != true || resp.Results[1].Success != false {
		t.Errorf("per-op flags = %v/%v, want true/false", resp.Results[0].Success, resp.Results[1].Success)
	}
	if resp.Results[1].Error != "item not found" {
		t.Errorf("Results[1].Error = %q", resp.Results[1].Error)
	}
}

func TestWhereRequestShape(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "items": []any{}})
	})

	_, err := c.Where(context.Background(), "orders", WhereParams{
		Filter: json.RawMessage(`{"status":"open"}`),
		Limit:  10,
		Sort:   "createdAt:desc",
	})
	if err != nil {
		t.Fatalf("Where() error = %v", err)
	}
	if body["collection"] != "orders" {
		t.Errorf("collection = %v", body["collection"])
	}
	if body["limit"] != float64(10) {
		t.Errorf("limit = %v, want 10", body["limit"])
	}
	if body["sort"] != "createdAt:desc" {
		t.Errorf("sort = %v", body["sort"])
	}

	// Defaults stay out of the payload entirely. Decode merges into a
	// non-nil map, so reset it to capture the second request alone.
	body = nil
	_, err = c.Where(context.Background(), "orders", WhereParams{})
	if err != nil {
		t.Fatalf("Where() error = %v", err)
	}
	for _, key := range []string{"filter", "limit", "sort"} {
		if _, ok := body[key]; ok {
			t.Errorf("unset %s still sent: %v", key, body[key])
		}
	}
}
