package utils

import "fmt"

// FormatUSD renders a dollar amount for documents.
func FormatUSD(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
