package fees

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts a user-entered amount to a positive value rounded to
// two decimals. Thousands separators, spaces and common currency symbols
// are tolerated; zero and negative amounts are rejected.
func ParseAmount(input string) (float64, error) {
	cleaned := strings.NewReplacer(",", "", " ", "", "₹", "", "$", "").Replace(input)
	if cleaned == "" {
		return 0, fmt.Errorf("amount is required")
	}

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", input)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("amount must be positive")
	}

	return math.Round(amount*100) / 100, nil
}
