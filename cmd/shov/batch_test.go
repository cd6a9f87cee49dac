package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shovdev/shov-cli/internal/api"
)

func TestLoadOperationsInlineJSON(t *testing.T) {
	ops, err := loadOperations([]string{`[{"type":"set","name":"a","value":{"n":1}},{"type":"get","name":"b"}]`}, "")
	if err != nil {
		t.Fatalf("loadOperations() error = %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("len(ops) = %d, want 2", len(ops))
	}
	if ops[0].Type != "set" || ops[0].Name != "a" {
		t.Errorf("ops[0] = %+v", ops[0])
	}
	if string(ops[0].Value) != `{"n":1}` {
		t.Errorf("ops[0].Value = %s", ops[0].Value)
	}
}

func TestLoadOperationsJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.json")
	content := `[{"type":"add","collection":"orders","value":{"sku":"espresso"}}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	ops, err := loadOperations(nil, path)
	if err != nil {
		t.Fatalf("loadOperations() error = %v", err)
	}
	if len(ops) != 1 || ops[0].Type != "add" || ops[0].Collection != "orders" {
		t.Errorf("ops = %+v", ops)
	}
}

func TestLoadOperationsYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.yaml")
	content := `- type: set
  name: greeting
  value: hello
- type: update
  collection: orders
  id: ord_1
  value:
    qty: 3
- type: clear
  collection: drafts
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	ops, err := loadOperations(nil, path)
	if err != nil {
		t.Fatalf("loadOperations() error = %v", err)
	}
	if len(ops) != 3 {
		t.Fatalf("len(ops) = %d, want 3", len(ops))
	}
	if ops[0].Type != "set" || ops[0].Name != "greeting" {
		t.Errorf("ops[0] = %+v", ops[0])
	}
	if string(ops[0].Value) != `"hello"` {
		t.Errorf("ops[0].Value = %s, want JSON string", ops[0].Value)
	}
	if ops[1].ID != "ord_1" || string(ops[1].Value) != `{"qty":3}` {
		t.Errorf("ops[1] = %+v value %s", ops[1], ops[1].Value)
	}
	if ops[2].Type != "clear" || ops[2].Collection != "drafts" {
		t.Errorf("ops[2] = %+v", ops[2])
	}
}

func TestLoadOperationsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		file string
	}{
		{"neither source", nil, ""},
		{"both sources", []string{"[]"}, "ops.json"},
		{"not a list", []string{`{"type":"set"}`}, ""},
		{"unparsable", []string{`[{"type":`}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadOperations(tt.args, tt.file); err == nil {
				t.Error("loadOperations() expected error")
			}
		})
	}
}

func TestLoadOperationsMissingFile(t *testing.T) {
	if _, err := loadOperations(nil, filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("loadOperations() expected error for missing file")
	}
}

func TestBatchFailed(t *testing.T) {
	tests := []struct {
		name string
		resp *api.BatchResponse
		want bool
	}{
		{
			"all entries succeeded",
			&api.BatchResponse{Success: true, Results: []api.BatchResult{{Success: true}, {Success: true}}},
			false,
		},
		{
			"one entry failed",
			&api.BatchResponse{Success: true, Results: []api.BatchResult{{Success: true}, {Success: false, Error: "not found"}}},
			true,
		},
		{
			"envelope failure with clean entries",
			&api.BatchResponse{Success: false, Results: []api.BatchResult{{Success: true}}},
			true,
		},
		{
			"no results",
			&api.BatchResponse{Success: true},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := batchFailed(tt.resp); got != tt.want {
				t.Errorf("batchFailed() = %v, want %v", got, tt.want)
			}
		})
	}
}
