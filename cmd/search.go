package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kamusis/skillswap/internal/catalog"
)

var flagSearchK int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search skills by keyword",
	Long: `Search titles, categories and descriptions. Every word of the query must
appear (case-insensitive). Results keep catalog order.`,
	Args: cobra.MinimumNArgs(0),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&flagSearchK, "k", 10, "Number of results to show (0 for all)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	query := strings.Join(args, " ")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	printSearchResults(query, catalog.KeywordSearch(c.Listings, query, flagSearchK))
	return nil
}

func printSearchResults(query string, results []catalog.Listing) {
	fmt.Printf("\nskillswap search %q\n\n", query)
	fmt.Printf("Results (%d found):\n", len(results))
	if len(results) == 0 {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, r := range results {
		fmt.Fprintf(w, "  %d.\t%s\t%s\t%s\n", i+1, r.Title, r.Category, formatPrice(r.Price))
		if d := strings.TrimSpace(r.Description); d != "" {
			fmt.Fprintf(w, "  - %s\n", d)
		}
	}
	_ = w.Flush()
}
