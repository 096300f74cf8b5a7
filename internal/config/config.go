package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the in-memory representation of ~/.skillswap/skillswap.yaml.
type Config struct {
	CatalogPath     string   `yaml:"catalog_path"`
	ListingsDir     string   `yaml:"listings_dir,omitempty"`
	SnapshotDir     string   `yaml:"snapshot_dir,omitempty"`
	DefaultCategory string   `yaml:"default_category,omitempty"`
	Excludes        []string `yaml:"excludes,omitempty"`
}

// HomeDir returns the SkillSwap state directory: $SKILLSWAP_HOME if set,
// otherwise ~/.skillswap.
func HomeDir() (string, error) {
	if v := os.Getenv("SKILLSWAP_HOME"); v != "" {
		return ExpandPath(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".skillswap"), nil
}

// ConfigPath returns the absolute path to skillswap.yaml.
func ConfigPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "skillswap.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the Config written on first skillswap init.
func DefaultConfig() (*Config, error) {
	dir, err := HomeDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		CatalogPath:     filepath.Join(dir, "catalog.yaml"),
		ListingsDir:     filepath.Join(dir, "listings"),
		SnapshotDir:     filepath.Join(dir, "snapshot"),
		DefaultCategory: "All",
		Excludes: []string{
			"*.draft",
			"TODO*",
		},
	}, nil
}

// Load reads and parses skillswap.yaml. SKILLSWAP_CATALOG (environment or
// .env) overrides catalog_path.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}

	override, err := GetConfigValue("SKILLSWAP_CATALOG")
	if err != nil {
		return nil, err
	}
	if override != "" {
		cfg.CatalogPath = override
	}
	if cfg.CatalogPath == "" {
		return nil, fmt.Errorf("catalog_path is not set in %s", path)
	}

	for _, p := range []*string{&cfg.CatalogPath, &cfg.ListingsDir, &cfg.SnapshotDir} {
		if *p, err = ExpandPath(*p); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// Save marshals cfg and writes it to skillswap.yaml.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}

// EffectiveCategory returns the category used when the caller passes none.
func (c *Config) EffectiveCategory() string {
	if strings.TrimSpace(c.DefaultCategory) == "" {
		return "All"
	}
	return c.DefaultCategory
}
