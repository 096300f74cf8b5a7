package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/kamusis/skillswap/internal/catalog"
)

var flagCategoriesLang string

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories with their skill counts",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	categoriesCmd.Flags().StringVar(&flagCategoriesLang, "lang", "en", "BCP 47 language tag used to order category names")
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	tag, err := language.Parse(flagCategoriesLang)
	if err != nil {
		return fmt.Errorf("invalid --lang %q: %w", flagCategoriesLang, err)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	cats := catalog.Categories(c.Skills(), tag)
	printSection(fmt.Sprintf("Categories (%d)", len(cats)))
	if len(cats) == 0 {
		printMiss("", "catalog is empty")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, cc := range cats {
		fmt.Fprintf(w, "  %s\t%d\n", cc.Name, cc.Count)
	}
	return w.Flush()
}
