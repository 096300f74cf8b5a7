package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamusis/skillswap/internal/skillswap"
)

var flagListCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills, optionally filtered by category",
	Long: `List skills from the catalog in catalog order.

  skillswap list                        Use default_category from skillswap.yaml
  skillswap list --category Music       Only skills filed under "Music" (exact match)
  skillswap list --category All         Every skill`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&flagListCategory, "category", "c", "", `Category to show ("All" for every skill)`)
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	category := cfg.EffectiveCategory()
	if cmd.Flags().Changed("category") {
		category = flagListCategory
	}

	skills := skillswap.FilterSkillsByCategory(c.Skills(), category)
	printSection(fmt.Sprintf("Skills (%s)", category))
	if len(skills) == 0 {
		printMiss("", fmt.Sprintf("no skills in category %q", category))
		return nil
	}
	writeSkills(os.Stdout, skills)
	return nil
}
