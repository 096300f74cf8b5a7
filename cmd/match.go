package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamusis/skillswap/internal/skillswap"
)

var (
	flagMatchCategory string
	flagMatchMaxPrice float64
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Find skills in a category within your budget",
	Long: `Match skills whose category equals --category exactly and whose price
is at or below --max-price. Unlike 'list', "All" is not a wildcard here.`,
	Args: cobra.NoArgs,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&flagMatchCategory, "category", "c", "", "Category you need (required)")
	matchCmd.Flags().Float64VarP(&flagMatchMaxPrice, "max-price", "p", 0, "Highest price you will pay (required)")
	_ = matchCmd.MarkFlagRequired("category")
	_ = matchCmd.MarkFlagRequired("max-price")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	maxPrice, err := checkAmount("max-price", flagMatchMaxPrice)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	needs := skillswap.UserNeeds{Category: flagMatchCategory, MaxPrice: maxPrice}
	matches := skillswap.MatchSkillsToUser(needs, c.Skills())

	printSection("Match")
	printInfo("", fmt.Sprintf("category %q, max price %s", needs.Category, formatPrice(needs.MaxPrice)))
	if len(matches) == 0 {
		printMiss("", "no skills match")
		return nil
	}
	printOK("", fmt.Sprintf("%d skill(s) match", len(matches)))
	writeSkills(os.Stdout, matches)
	return nil
}
