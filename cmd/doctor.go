package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamusis/skillswap/internal/catalog"
	"github.com/kamusis/skillswap/internal/config"
	"github.com/kamusis/skillswap/internal/skillswap"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the config, catalog and listings for problems",
	Long: `Validate SkillSwap's configuration and data files.
Run this command when something seems wrong, or before filing a bug report.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	allOK := true
	failD := func(format string, args ...any) {
		printErr("", fmt.Sprintf(format, args...))
		allOK = false
	}

	printSection("skillswap doctor")
	fmt.Println()

	// ── Check 1: skillswap.yaml ───────────────────────────────────────────────
	fmt.Println("[ skillswap.yaml ]")
	cfg, loadErr := config.Load()
	if loadErr != nil {
		failD("cannot load config: %v", loadErr)
	} else {
		cfgPath, _ := config.ConfigPath()
		printOK("", fmt.Sprintf("valid YAML: %s", cfgPath))
	}
	fmt.Println()

	// ── Check 2: catalog file ─────────────────────────────────────────────────
	fmt.Println("[ Catalog ]")
	var skills []skillswap.Skill
	if loadErr == nil {
		if _, err := os.Stat(cfg.CatalogPath); os.IsNotExist(err) {
			printMiss("", fmt.Sprintf("catalog file not found: %s", cfg.CatalogPath))
		} else if fileSkills, err := catalog.LoadFile(cfg.CatalogPath); err != nil {
			failD("%v", err)
		} else {
			printOK("", fmt.Sprintf("%d skill(s) in %s", len(fileSkills), cfg.CatalogPath))
			skills = append(skills, fileSkills...)
		}
	} else {
		printWarn("", "skipped (skillswap.yaml not loaded)")
	}
	fmt.Println()

	// ── Check 3: listings directory ───────────────────────────────────────────
	fmt.Println("[ Listings ]")
	if loadErr == nil {
		listings, err := catalog.DiscoverListings(cfg.ListingsDir)
		switch {
		case err != nil:
			failD("%v", err)
		case cfg.ListingsDir == "":
			printSkip("", "listings_dir not configured")
		default:
			printOK("", fmt.Sprintf("%d listing(s) in %s", len(listings), cfg.ListingsDir))
			for _, l := range listings {
				skills = append(skills, l.Skill)
			}
		}
	} else {
		printWarn("", "skipped (skillswap.yaml not loaded)")
	}
	fmt.Println()

	// ── Check 4: category hygiene ─────────────────────────────────────────────
	// Categories match exactly, so near-duplicates split listings silently.
	fmt.Println("[ Categories ]")
	if issues := categoryIssues(skills); len(issues) == 0 {
		printOK("", "no suspicious category names")
	} else {
		for _, msg := range issues {
			printWarn("", msg)
		}
	}
	fmt.Println()

	// ── Summary ──────────────────────────────────────────────────────────────
	fmt.Println("===================")
	if allOK {
		fmt.Println("✓  All checks passed. SkillSwap is ready to use.")
	} else {
		fmt.Fprintln(os.Stderr, "✗  One or more checks failed. See details above.")
		return fmt.Errorf("doctor found issues")
	}
	return nil
}

// categoryIssues reports categories with stray whitespace and categories that
// differ only by case. The reserved wildcard is reported too, since listings
// filed under it are unreachable through a category filter.
func categoryIssues(skills []skillswap.Skill) []string {
	var out []string
	seen := make(map[string]bool)
	byFold := make(map[string]string)
	for _, s := range skills {
		c := s.Category
		if seen[c] {
			continue
		}
		seen[c] = true

		if c != strings.TrimSpace(c) {
			out = append(out, fmt.Sprintf("category %q has leading or trailing spaces", c))
		}
		if c == skillswap.AllCategories {
			out = append(out, fmt.Sprintf("category %q is the list wildcard", c))
		}
		fold := strings.ToLower(strings.TrimSpace(c))
		if prev, ok := byFold[fold]; ok {
			out = append(out, fmt.Sprintf("categories %q and %q differ only by case or spacing", prev, c))
		} else {
			byFold[fold] = c
		}
	}
	return out
}
