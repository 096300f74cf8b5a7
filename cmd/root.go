package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kamusis/skillswap/internal/catalog"
	"github.com/kamusis/skillswap/internal/config"
)

var (
	flagVerbose bool

	// logger carries diagnostics; it stays a no-op unless --verbose is set.
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:          "skillswap",
	Short:        "SkillSwap — browse, price and match skill-exchange listings",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `SkillSwap reads skill listings from a YAML catalog (~/.skillswap/catalog.yaml)
and a directory of LISTING.md documents, and lets you filter them by category,
price a session, and match listings to your budget.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !flagVerbose {
			return nil
		}
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("cannot create logger: %w", err)
		}
		logger = l
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print diagnostic logs to stderr")
}

// Execute is called by main.go.
func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig wraps config.Load with the hint every command prints on failure.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w\nRun 'skillswap init' first.", err)
	}
	return cfg, nil
}

// loadCatalog reads the catalog file and listings directory named in cfg.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	ld := &catalog.Loader{
		CatalogPath: cfg.CatalogPath,
		ListingsDir: cfg.ListingsDir,
		Logger:      logger,
	}
	c, err := ld.Load()
	if err != nil {
		return nil, fmt.Errorf("cannot load catalog: %w", err)
	}
	return c, nil
}
