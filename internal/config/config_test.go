package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoad_RoundTripsDefaults(t *testing.T) {
	home := setHome(t)

	cfg, err := DefaultConfig()
	if err != nil {
		t.Fatal(err)
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.CatalogPath != filepath.Join(home, "catalog.yaml") {
		t.Fatalf("unexpected catalog path: %q", got.CatalogPath)
	}
	if got.EffectiveCategory() != "All" {
		t.Fatalf("unexpected default category: %q", got.EffectiveCategory())
	}
}

func TestLoad_CatalogOverrideFromDotEnv(t *testing.T) {
	home := setHome(t)
	if err := os.WriteFile(filepath.Join(home, "skillswap.yaml"), []byte("catalog_path: /nowhere.yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".env"), []byte("SKILLSWAP_CATALOG=/elsewhere.yaml\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CatalogPath != "/elsewhere.yaml" {
		t.Fatalf("expected dotenv override, got %q", cfg.CatalogPath)
	}
}

func TestLoad_RequiresCatalogPath(t *testing.T) {
	home := setHome(t)
	if err := os.WriteFile(filepath.Join(home, "skillswap.yaml"), []byte("default_category: Music\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing catalog_path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	home := setHome(t)
	if err := os.WriteFile(filepath.Join(home, "skillswap.yaml"), []byte("catalog_path: [unterminated\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("expected YAML error")
	}
}
