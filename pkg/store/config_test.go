package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MINDTRACKR_CONFIG_PATH", t.TempDir())
	t.Setenv("HOME", "/home/tester")
	homedir.DisableCache = true
	defer func() { homedir.DisableCache = false }()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BasePath() != "/home/tester/.mindtrackr" {
		t.Fatalf("unexpected base path %s", cfg.BasePath())
	}
	if cfg.Backend() != BackendDiskv {
		t.Fatalf("unexpected backend %s", cfg.Backend())
	}
	if cfg.SlotName() != DefaultSlotName {
		t.Fatalf("unexpected slot %s", cfg.SlotName())
	}
	if cfg.Quota() != DefaultQuota {
		t.Fatalf("unexpected quota %d", cfg.Quota())
	}
	if cfg.LogLevel() != DefaultLogLevel || cfg.LogFormat() != DefaultLogFormat {
		t.Fatalf("unexpected log settings %s/%s", cfg.LogLevel(), cfg.LogFormat())
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	data := "path: " + filepath.Join(dir, "data") + "\nbackend: sqlite\nslot: work\nlog:\n  level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, ".mindtrackr.yaml"), []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MINDTRACKR_CONFIG_PATH", dir)
	t.Setenv("MINDTRACKR_SLOT", "override")
	t.Setenv("MINDTRACKR_LOG_FORMAT", "json")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BasePath() != filepath.Join(dir, "data") {
		t.Fatalf("unexpected base path %s", cfg.BasePath())
	}
	if cfg.Backend() != BackendSQLite {
		t.Fatalf("unexpected backend %s", cfg.Backend())
	}
	if cfg.SlotName() != "override" {
		t.Fatalf("env should win over file, got %s", cfg.SlotName())
	}
	if cfg.LogLevel() != "debug" || cfg.LogFormat() != "json" {
		t.Fatalf("unexpected log settings %s/%s", cfg.LogLevel(), cfg.LogFormat())
	}
	if s, ok := cfg.(*Settings); !ok || len(s.Sources) != 1 {
		t.Fatalf("expected config file to be recorded as a source")
	}
}

func TestLoadConfigBadBackend(t *testing.T) {
	t.Setenv("MINDTRACKR_CONFIG_PATH", t.TempDir())
	t.Setenv("MINDTRACKR_BACKEND", "tape")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestParseBackend(t *testing.T) {
	for in, want := range map[string]Backend{
		"":        BackendDiskv,
		"SQLite":  BackendSQLite,
		" memory": BackendMemory,
	} {
		got, err := ParseBackend(in)
		if err != nil || got != want {
			t.Fatalf("ParseBackend(%q) = %s, %v", in, got, err)
		}
	}
}
