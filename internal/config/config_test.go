package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BackendURL != "http://localhost:5000" {
		t.Errorf("BackendURL = %q, want default", cfg.BackendURL)
	}
	if cfg.PollInterval.Std() != time.Second {
		t.Errorf("PollInterval = %v, want 1s", cfg.PollInterval.Std())
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
backend_url: http://observatory:5000
poll_interval: 250ms
snapshot_dir: /tmp/snapshots
log_file: /tmp/focustop.log
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BackendURL != "http://observatory:5000" {
		t.Errorf("BackendURL = %q", cfg.BackendURL)
	}
	if cfg.PollInterval.Std() != 250*time.Millisecond {
		t.Errorf("PollInterval = %v, want 250ms", cfg.PollInterval.Std())
	}
	if cfg.SnapshotDir != "/tmp/snapshots" {
		t.Errorf("SnapshotDir = %q", cfg.SnapshotDir)
	}
	if cfg.LogFile != "/tmp/focustop.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "backend_url: http://cam:5000\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BackendURL != "http://cam:5000" {
		t.Errorf("BackendURL = %q", cfg.BackendURL)
	}
	if cfg.PollInterval.Std() != time.Second {
		t.Errorf("PollInterval = %v, want default 1s", cfg.PollInterval.Std())
	}
	if cfg.SnapshotDir != "." {
		t.Errorf("SnapshotDir = %q, want default", cfg.SnapshotDir)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad yaml", content: "backend_url: [unclosed\n"},
		{name: "bad duration", content: "poll_interval: soon\n"},
		{name: "interval too small", content: "poll_interval: 10ms\n"},
		{name: "empty backend", content: "backend_url: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("Load succeeded, want error")
			}
		})
	}
}
