package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.Locale != "en-US" {
		t.Errorf("Expected locale en-US, got %s", cfg.Locale)
	}
	if cfg.Weekday() != time.Monday {
		t.Errorf("Expected Monday, got %s", cfg.Weekday())
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	appDir := filepath.Join(dir, AppName)
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "port: 9090\nlocale: de-DE\nfirst_weekday: sunday\n"
	if err := os.WriteFile(filepath.Join(appDir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != 9090 || cfg.Locale != "de-DE" || cfg.Weekday() != time.Sunday {
		t.Errorf("Expected 9090/de-DE/Sunday, got %d/%s/%s", cfg.Port, cfg.Locale, cfg.Weekday())
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kalender.yaml")
	if err := os.WriteFile(path, []byte("port: 9090\nlocale: de-DE\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("KALENDER_GRID_PORT", "7070")
	t.Setenv("KALENDER_GRID_FIRST_WEEKDAY", "sat")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != 7070 {
		t.Errorf("Expected port 7070 from environment, got %d", cfg.Port)
	}
	if cfg.Locale != "de-DE" {
		t.Errorf("Expected locale de-DE from file, got %s", cfg.Locale)
	}
	if cfg.Weekday() != time.Saturday {
		t.Errorf("Expected Saturday from environment, got %s", cfg.Weekday())
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("Expected error for a missing config file")
		}
	})

	t.Run("bad weekday", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("KALENDER_GRID_FIRST_WEEKDAY", "someday")
		if _, err := LoadConfig(""); err == nil {
			t.Error("Expected error for an unknown first weekday")
		}
	})
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := ConfigDir(); got != filepath.Join("/tmp/xdg", AppName) {
		t.Errorf("Expected /tmp/xdg/%s, got %s", AppName, got)
	}
}
