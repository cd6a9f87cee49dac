package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSecretsFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.yaml")
	content := "STRIPE_KEY: sk_test_123\nWEBHOOK_SECRET: whsec_456\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	secrets, err := loadSecretsFile(path)
	if err != nil {
		t.Fatalf("loadSecretsFile() error = %v", err)
	}
	if len(secrets) != 2 {
		t.Fatalf("len(secrets) = %d, want 2", len(secrets))
	}
	if secrets["STRIPE_KEY"] != "sk_test_123" {
		t.Errorf("STRIPE_KEY = %q", secrets["STRIPE_KEY"])
	}
}

func TestLoadSecretsFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.json")
	if err := os.WriteFile(path, []byte(`{"API_TOKEN":"tok_789"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	secrets, err := loadSecretsFile(path)
	if err != nil {
		t.Fatalf("loadSecretsFile() error = %v", err)
	}
	if secrets["API_TOKEN"] != "tok_789" {
		t.Errorf("API_TOKEN = %q", secrets["API_TOKEN"])
	}
}

func TestLoadSecretsFileRejectsNonStrings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.yaml")
	if err := os.WriteFile(path, []byte("RETRIES:\n  max: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadSecretsFile(path); err == nil {
		t.Error("loadSecretsFile() expected error for non-string value")
	}
}

func TestLoadSecretsFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.yaml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadSecretsFile(path); err == nil {
		t.Error("loadSecretsFile() expected error for empty file")
	}
}
