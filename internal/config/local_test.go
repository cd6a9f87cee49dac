package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdirTemp moves the test into a fresh temp directory and restores
// the original working directory on cleanup.
func chdirTemp(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()

	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("changing directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
	return tmp
}

func TestLoadLocal_Missing(t *testing.T) {
	chdirTemp(t)

	cfg := LoadLocal()
	if cfg != (LocalConfig{}) {
		t.Errorf("LoadLocal() = %+v, want empty config", cfg)
	}
	if cfg.HasCredentials() {
		t.Error("empty config should not report credentials")
	}
}

func TestLoadLocal_Unparsable(t *testing.T) {
	tmp := chdirTemp(t)

	if err := os.WriteFile(filepath.Join(tmp, LocalConfigFile), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadLocal()
	if cfg != (LocalConfig{}) {
		t.Errorf("LoadLocal() = %+v, want empty config for corrupt file", cfg)
	}
}

func TestSaveLocal_RoundTrip(t *testing.T) {
	chdirTemp(t)

	want := LocalConfig{Project: "acme", APIKey: "shov_live_abc123", Email: "dev@acme.test"}
	if err := SaveLocal(want); err != nil {
		t.Fatalf("SaveLocal() error = %v", err)
	}

	got := LoadLocal()
	if got != want {
		t.Errorf("LoadLocal() = %+v, want %+v", got, want)
	}
	if !got.HasCredentials() {
		t.Error("round-tripped config should report credentials")
	}
}

func TestSaveLocal_Overwrites(t *testing.T) {
	chdirTemp(t)

	if err := SaveLocal(LocalConfig{Project: "first", APIKey: "k1"}); err != nil {
		t.Fatal(err)
	}
	if err := SaveLocal(LocalConfig{Project: "second", APIKey: "k2"}); err != nil {
		t.Fatal(err)
	}

	got := LoadLocal()
	if got.Project != "second" || got.APIKey != "k2" {
		t.Errorf("LoadLocal() = %+v, want the second write", got)
	}
}

func TestHasCredentials(t *testing.T) {
	tests := []struct {
		name string
		cfg  LocalConfig
		want bool
	}{
		{"both", LocalConfig{Project: "p", APIKey: "k"}, true},
		{"project only", LocalConfig{Project: "p"}, false},
		{"key only", LocalConfig{APIKey: "k"}, false},
		{"neither", LocalConfig{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.HasCredentials(); got != tt.want {
				t.Errorf("HasCredentials() = %v, want %v", got, tt.want)
			}
		})
	}
}
