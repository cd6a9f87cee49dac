package main

import (
	"encoding/json"
	"testing"
)

func TestRenderValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"string without quotes", `"hello"`, "hello"},
		{"number", `42`, "42"},
		{"object indented", `{"a":1}`, "{\n  \"a\": 1\n}"},
		{"empty", ``, "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderValue(json.RawMessage(tt.raw)); got != tt.want {
				t.Errorf("renderValue(%s) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValueSnippet(t *testing.T) {
	raw := json.RawMessage("{\n  \"a\": 1,\n  \"b\": 2\n}")
	if got := valueSnippet(raw); got != `{ "a": 1, "b": 2 }` {
		t.Errorf("valueSnippet() = %q", got)
	}
}

func TestTruncateString(t *testing.T) {
	if got := truncateString("short", 10); got != "short" {
		t.Errorf("truncateString(short) = %q", got)
	}
	if got := truncateString("exactly-ten", 11); got != "exactly-ten" {
		t.Errorf("truncateString(exact) = %q", got)
	}
	if got := truncateString("a very long string indeed", 10); got != "a very ..." {
		t.Errorf("truncateString(long) = %q", got)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
