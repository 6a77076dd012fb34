package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DuyTa506/docuflow/spatial"
)

func TestLoadConfigWithEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	want := spatial.DefaultConfig()
	if cfg.UseThinning != want.UseThinning || cfg.ThinningGapMultiplier != want.ThinningGapMultiplier {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadConfigOverlaysOnlyNamedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlContent := []byte("use_thinning: false\nspatial_weights:\n  label: 0.5\n")
	if err := os.WriteFile(path, yamlContent, 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.UseThinning {
		t.Errorf("UseThinning = true, want false (overridden)")
	}
	if cfg.SpatialWeights.Label != 0.5 {
		t.Errorf("SpatialWeights.Label = %v, want 0.5", cfg.SpatialWeights.Label)
	}

	defaults := spatial.DefaultConfig()
	if cfg.UseFilters != defaults.UseFilters {
		t.Errorf("UseFilters = %v, want untouched default %v", cfg.UseFilters, defaults.UseFilters)
	}
	if cfg.SpatialWeights.Whitespace != defaults.SpatialWeights.Whitespace {
		t.Errorf("SpatialWeights.Whitespace = %v, want untouched default %v", cfg.SpatialWeights.Whitespace, defaults.SpatialWeights.Whitespace)
	}
}

func TestLoadConfigRejectsUnreadableFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing configuration file, got nil")
	}
}

func TestDumpConfigRoundTripsThroughLoadConfig(t *testing.T) {
	original := spatial.DefaultConfig()
	data, err := DumpConfig(original)
	if err != nil {
		t.Fatalf("DumpConfig returned error: %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "dumped.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write dumped config: %v", err)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if reloaded.UseFilters != original.UseFilters || reloaded.ThinningGapMultiplier != original.ThinningGapMultiplier {
		t.Errorf("reloaded = %+v, want round-trip of %+v", reloaded, original)
	}
}
