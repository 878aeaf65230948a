package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadConfigDefaults(t *testing.T) {
	resetViper(t)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %q, want %q", cfg.Format, "console")
	}
	if cfg.Root != "." {
		t.Errorf("Root = %q, want %q", cfg.Root, ".")
	}
	if cfg.Details || cfg.Quiet || cfg.Verbose {
		t.Errorf("boolean defaults not false: %+v", cfg)
	}
}

func TestLoadConfigRootOverride(t *testing.T) {
	resetViper(t)

	cfg, err := LoadConfig("/data/reports")
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Root != "/data/reports" {
		t.Errorf("Root = %q, want override %q", cfg.Root, "/data/reports")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	resetViper(t)

	dir := t.TempDir()
	content := `{"format": "markdown", "details": true, "patterns": ["etl/**/*.quality.json"]}`
	if err := os.WriteFile(filepath.Join(dir, ".dqviewrc.json"), []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Format != "markdown" {
		t.Errorf("Format = %q, want %q", cfg.Format, "markdown")
	}
	if !cfg.Details {
		t.Error("Details = false, want true from config file")
	}
	if len(cfg.Patterns) != 1 || cfg.Patterns[0] != "etl/**/*.quality.json" {
		t.Errorf("Patterns = %v, want configured pattern", cfg.Patterns)
	}
}

func TestLoadConfigRejectsBadFormat(t *testing.T) {
	resetViper(t)
	viper.Set("format", "xml")

	if _, err := LoadConfig(""); err == nil {
		t.Error("LoadConfig() accepted an invalid format")
	}
}
