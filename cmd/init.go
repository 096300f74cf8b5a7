package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kamusis/skillswap/internal/catalog"
	"github.com/kamusis/skillswap/internal/config"
	"github.com/kamusis/skillswap/internal/skillswap"
)

// sampleSkills seeds a fresh catalog so the other commands have something to show.
var sampleSkills = []skillswap.Skill{
	{Title: "Python Tutoring", Category: "Programming", Price: 20},
	{Title: "Guitar Lessons", Category: "Music", Price: 15},
	{Title: "Resume Review", Category: "Career", Price: 0},
	{Title: "Web Development", Category: "Programming", Price: 25},
}

const sampleListing = `---
title: Sourdough Basics
category: Cooking
price: 10
---

# Sourdough Basics

Feed a starter, shape a loaf and bake it in a home oven.
`

var flagInitNoSample bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create ~/.skillswap with a default config and sample catalog",
	Long: `Initialize SkillSwap at ~/.skillswap/ (or $SKILLSWAP_HOME).

Existing files are never overwritten.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&flagInitNoSample, "no-sample", false, "Do not seed the catalog with sample skills")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	// ── 1. Resolve and create the state directory ─────────────────────────────
	homeDir, err := config.HomeDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", homeDir, err)
	}
	printOK("", fmt.Sprintf("SkillSwap directory ready: %s", homeDir))

	// ── 2. Write skillswap.yaml if missing ────────────────────────────────────
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		cfg, err := config.DefaultConfig()
		if err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("Config written: %s", cfgPath))
	} else {
		printSkip("", fmt.Sprintf("Config already exists: %s", cfgPath))
	}

	if err := config.EnsureDotEnvTemplate(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// ── 3. Seed the catalog and listings directory ────────────────────────────
	if flagInitNoSample {
		printSkip("", "sample catalog not requested")
	} else if err := seedSamples(cfg); err != nil {
		return err
	}

	fmt.Println("\n✓  skillswap init complete. Run 'skillswap list' to browse your catalog.")
	return nil
}

func seedSamples(cfg *config.Config) error {
	if _, err := os.Stat(cfg.CatalogPath); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(cfg.CatalogPath), 0o755); err != nil {
			return fmt.Errorf("cannot create catalog directory: %w", err)
		}
		if err := catalog.SaveFile(cfg.CatalogPath, sampleSkills); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("Sample catalog written: %s", cfg.CatalogPath))
	} else {
		printSkip("", fmt.Sprintf("Catalog already exists: %s", cfg.CatalogPath))
	}

	if cfg.ListingsDir == "" {
		return nil
	}
	dir := filepath.Join(cfg.ListingsDir, "sourdough-basics")
	if _, err := os.Stat(cfg.ListingsDir); err == nil {
		printSkip("", fmt.Sprintf("Listings directory already exists: %s", cfg.ListingsDir))
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create listings directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, catalog.ListingFile), []byte(sampleListing), 0o644); err != nil {
		return fmt.Errorf("cannot write sample listing: %w", err)
	}
	printOK("", fmt.Sprintf("Sample listing written: %s", dir))
	return nil
}
