package utils

import (
	"fmt"
	"math"
)

var currencySymbols = map[string]string{
	"LKR": "Rs.",
	"USD": "$",
}

// RoundCurrency rounds half away from zero to two decimals.
func RoundCurrency(amount float64) float64 {
	return math.Round(amount*100) / 100
}

func FormatCurrency(amount float64, currencyCode string) string {
	symbol, ok := currencySymbols[currencyCode]
	if !ok {
		symbol = currencyCode
	}
	return fmt.Sprintf("%s %.2f", symbol, RoundCurrency(amount))
}
