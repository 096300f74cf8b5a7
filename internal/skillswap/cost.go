package skillswap

// CalculateTotalCost returns the cost of a session of hours at an hourly rate.
// No rounding is applied and inputs are not validated.
func CalculateTotalCost(rate, hours float64) float64 {
	return rate * hours
}
