package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	if cfg.OutputMode != "tree" || cfg.TabWidth != 8 || cfg.JSONIndent != 2 {
		t.Errorf("Default() = %+v", cfg)
	}
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venom.yaml")
	if err := os.WriteFile(path, []byte("outputMode: json\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if cfg.OutputMode != "json" {
		t.Errorf("OutputMode = %q, want json", cfg.OutputMode)
	}
	if cfg.TabWidth != 8 || cfg.JSONIndent != 2 {
		t.Errorf("unset fields should keep Default()'s values, got %+v", cfg)
	}
}

func TestLoadMissingFileReturnsDefaultAndError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load: expected an error for a missing file")
	}
	if cfg != Default() {
		t.Errorf("Load on error = %+v, want Default()", cfg)
	}
}
