package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kamusis/skillswap/internal/catalog/snapshot"
)

var (
	flagExportOut     string
	flagExportTimeout time.Duration
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a JSON snapshot of the catalog",
	Long: `Export every skill to a snapshot directory (manifest.json + skills.jsonl).

The snapshot is written to a temp directory and swapped into place, so a
reader never sees a partial export.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Snapshot directory (default: snapshot_dir from skillswap.yaml)")
	exportCmd.Flags().DurationVar(&flagExportTimeout, "lock-timeout", 10*time.Second, "How long to wait for another export to finish")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := flagExportOut
	if out == "" {
		out = cfg.SnapshotDir
	}
	if out == "" {
		return fmt.Errorf("no snapshot directory: pass --out or set snapshot_dir in skillswap.yaml")
	}

	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	snap, err := snapshot.Export(ctx, c, snapshot.ExportOptions{
		OutDir:      out,
		Source:      cfg.CatalogPath,
		LockTimeout: flagExportTimeout,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	printOK("", fmt.Sprintf("%d skill(s) exported to %s", snap.Manifest.Count, out))
	return nil
}
