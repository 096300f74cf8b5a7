package cmd

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kamusis/skillswap/internal/skillswap"
)

var costCmd = &cobra.Command{
	Use:   "cost <rate> <hours>",
	Short: "Compute the total cost of a session",
	Long: `Multiply an hourly rate by a session length.

  skillswap cost 25 1.5     → 37.5`,
	Args: cobra.ExactArgs(2),
	RunE: runCost,
}

func init() {
	rootCmd.AddCommand(costCmd)
}

func runCost(_ *cobra.Command, args []string) error {
	rate, err := parseAmount("rate", args[0])
	if err != nil {
		return err
	}
	hours, err := parseAmount("hours", args[1])
	if err != nil {
		return err
	}
	fmt.Println(formatPrice(skillswap.CalculateTotalCost(rate, hours)))
	return nil
}

// parseAmount parses a finite, non-negative number given on the command line.
func parseAmount(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: not a number", name, s)
	}
	return checkAmount(name, v)
}

// checkAmount rejects negative and non-finite amounts.
func checkAmount(name string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s %v: must be finite", name, v)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid %s %v: must not be negative", name, v)
	}
	return v, nil
}
