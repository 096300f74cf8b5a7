package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kamusis/skillswap/internal/catalog"
	"github.com/kamusis/skillswap/internal/importer"
)

var flagImportDryRun bool

var importCmd = &cobra.Command{
	Use:   "import <catalog.yaml>",
	Short: "Merge another catalog file into yours",
	Long: `Merge skills from another YAML catalog into catalog_path.

Rows are keyed by title and category. Identical rows are skipped; a row whose
key already exists with a different price is reported as a conflict and your
row is kept. Titles matching an 'excludes' pattern in skillswap.yaml are dropped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&flagImportDryRun, "dry-run", false, "Report what would change without writing")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// LoadFile treats a missing file as empty; an import source must exist.
	if _, err := os.Stat(args[0]); err != nil {
		return fmt.Errorf("cannot read %s: %w", args[0], err)
	}
	src, err := catalog.LoadFile(args[0])
	if err != nil {
		return err
	}
	dst, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return err
	}

	source := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	r := importer.Merge(dst, src, source, cfg.Excludes)
	logger.Debug("merge finished",
		zap.String("source", source),
		zap.Int("imported", r.Imported),
		zap.Int("skipped", r.Skipped),
		zap.Int("excluded", r.Excluded),
		zap.Int("conflicts", len(r.Conflicts)))

	printSection("Import")
	printOK("", fmt.Sprintf("%d new skill(s)", r.Imported))
	if r.Skipped > 0 {
		printSkip("", fmt.Sprintf("%d identical skill(s) already listed", r.Skipped))
	}
	if r.Excluded > 0 {
		printSkip("", fmt.Sprintf("%d skill(s) excluded by pattern", r.Excluded))
	}
	if len(r.Conflicts) > 0 {
		printBullet("Conflicts (kept the first price):")
		for _, c := range r.Conflicts {
			owner := "yours"
			if c.InSource {
				owner = c.Source + " (duplicate)"
			}
			printWarn(c.Existing.Title, fmt.Sprintf("%s: %s %s, %s %s",
				c.Existing.Category, owner, formatPrice(c.Existing.Price), c.Source, formatPrice(c.Incoming.Price)))
		}
	}

	if flagImportDryRun {
		printInfo("", "dry run, catalog not written")
		return nil
	}
	if r.Imported == 0 {
		return nil
	}
	if err := catalog.SaveFile(cfg.CatalogPath, r.Skills); err != nil {
		return err
	}
	printOK("", fmt.Sprintf("catalog written: %s", cfg.CatalogPath))
	return nil
}
